package types

import "time"

// Platform identifies the origin of a link-based reference.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

// Mode is the user's chosen output format.
type Mode string

const (
	// ModeRound splits the source into square video-note clips.
	ModeRound Mode = "round"
	// ModeRegular forwards the materialized source unchanged.
	ModeRegular Mode = "regular"
)

// ContentReference is a classified inbound reference. Exactly one of the
// two shapes is populated: a platform link or an uploaded Telegram file.
type ContentReference struct {
	Platform Platform
	URL      string
	FileID   string
}

// IsUpload reports whether the reference points at an uploaded file
// rather than a platform link.
func (r ContentReference) IsUpload() bool { return r.FileID != "" }

// SourceInfo is the result of a metadata-only probe of a remote source.
type SourceInfo struct {
	ID       string
	Duration time.Duration
}

// Segment is one ≤60s slice of a source video. Index positions the
// segment within its job; delivery order follows Index strictly.
type Segment struct {
	Index    int
	Start    time.Duration
	Duration time.Duration
}

// SegmentLength is the hard per-clip ceiling imposed by the video-note
// format on the delivery side.
const SegmentLength = 60 * time.Second
