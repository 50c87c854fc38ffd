// Package classify decides what kind of content reference a piece of
// inbound text is. It is pure string work: no network, no filesystem.
package classify

import (
	"regexp"
	"strings"

	"roundbot/internal/types"
)

// Classify tags a text message as a supported platform link.
func Classify(text string) (types.ContentReference, error) {
	switch {
	case IsYouTubeURL(text):
		return types.ContentReference{Platform: types.PlatformYouTube, URL: text}, nil
	case IsInstagramURL(text):
		return types.ContentReference{Platform: types.PlatformInstagram, URL: text}, nil
	default:
		return types.ContentReference{}, types.ErrUnrecognizedReference
	}
}

// IsYouTubeURL matches by host fragment, which covers watch links,
// shorts and the youtu.be short domain alike.
func IsYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// IsInstagramURL matches instagram.com and its short-domain variants.
func IsInstagramURL(url string) bool {
	u := strings.ToLower(url)
	return strings.Contains(u, "instagram.com") ||
		strings.Contains(u, "instagr.am") ||
		strings.Contains(u, "ig.me")
}

// Ordered path shapes an Instagram link can take. First capture wins.
var instagramIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`instagram\.com/reels?/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagram\.com/reel/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagram\.com/p/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagram\.com/tv/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagram\.com/videos?/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagr\.am/p/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagr\.am/tv/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagr\.am/reels?/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`instagram\.com/stories/[^/]+/([A-Za-z0-9_-]+)`),
}

// ExtractInstagramID pulls the content ID out of an Instagram link.
// When no known path shape matches it falls back to the last non-empty
// path segment if that segment is longer than 5 characters. The fallback
// is best-effort and can misread malformed links.
func ExtractInstagramID(url string) (string, error) {
	clean := strings.ToLower(url)
	if i := strings.IndexByte(clean, '?'); i >= 0 {
		clean = clean[:i]
	}

	for _, p := range instagramIDPatterns {
		if m := p.FindStringSubmatch(clean); m != nil {
			return m[1], nil
		}
	}

	var last string
	for _, part := range strings.Split(clean, "/") {
		if part != "" {
			last = part
		}
	}
	if len(last) > 5 {
		return last, nil
	}
	return "", types.ErrUnrecognizedReference
}
