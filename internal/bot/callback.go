package bot

import (
	"errors"
	"strings"

	"roundbot/internal/types"
)

// Callback tag grammar: "{round|regular}_{token}" for link jobs and
// "{round|regular}_file_{token}" for upload jobs. Tokens are opaque.
func parseCallback(data string) (mode types.Mode, token string, isFile, ok bool) {
	var rest string
	switch {
	case strings.HasPrefix(data, "round_"):
		mode, rest = types.ModeRound, strings.TrimPrefix(data, "round_")
	case strings.HasPrefix(data, "regular_"):
		mode, rest = types.ModeRegular, strings.TrimPrefix(data, "regular_")
	default:
		return "", "", false, false
	}
	if rest == "" {
		return "", "", false, false
	}
	if after, found := strings.CutPrefix(rest, "file_"); found {
		if after == "" {
			return "", "", false, false
		}
		return mode, after, true, true
	}
	return mode, rest, false, true
}

// noticeKey maps a terminal job error to the single user-facing message
// for it. Delivery failures are excluded: the engine already told the
// user the send failed.
func noticeKey(err error, ref types.ContentReference) string {
	var pv *types.PolicyViolation
	if errors.As(err, &pv) {
		return "videoTooLong"
	}
	if errors.Is(err, types.ErrUnrecognizedReference) {
		return "invalidUrl"
	}
	if errors.Is(err, types.ErrStaleSelection) {
		return "errorGeneral"
	}
	if ref.IsUpload() {
		return "errorProcessingFile"
	}
	switch ref.Platform {
	case types.PlatformYouTube:
		return "errorProcessingYouTube"
	case types.PlatformInstagram:
		return "errorProcessingInstagram"
	}
	return "errorProcessingVideo"
}
