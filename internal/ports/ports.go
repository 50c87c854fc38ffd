package ports

import (
	"context"
	"time"

	"roundbot/internal/types"
)

// VideoTool probes and transcodes local files via the external encoder.
type VideoTool interface {
	ProbeDuration(ctx context.Context, in string) (time.Duration, error)
	// TranscodeSegment seeks to start, caps at dur, and writes a square
	// 384x384 clip suitable for a video note to out.
	TranscodeSegment(ctx context.Context, in string, start, dur time.Duration, out string) error
}

// Extractor resolves and downloads link-based sources via the external
// extraction binary.
type Extractor interface {
	// Probe fetches metadata only: canonical content ID and duration.
	// No payload bytes are transferred.
	Probe(ctx context.Context, url string) (types.SourceInfo, error)
	// Download materializes the source at out in the fixed container
	// format. Instagram sources are fetched with a browser User-Agent
	// because some endpoints reject default client identification.
	Download(ctx context.Context, platform types.Platform, url, out string) error
}

// UploadFetcher pulls an uploaded file's bytes out of the transport.
type UploadFetcher interface {
	FetchUpload(ctx context.Context, fileID, out string) error
}

// Sink delivers one produced artifact back through the transport.
type Sink interface {
	SendVideo(ctx context.Context, chatID int64, path string) error
	SendVideoNote(ctx context.Context, chatID int64, name string, data []byte) error
}

// Notifier emits user-facing progress text. Notices are informational;
// a failed notice never aborts a job.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string)
}
