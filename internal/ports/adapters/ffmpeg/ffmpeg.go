package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Fixed output parameters of the video-note format. Telegram renders
// notes as a circle, so the clip must be square; 384x384 keeps files
// comfortably inside the note size limit.
const (
	noteSide     = 384
	videoCodec   = "libx264"
	audioCodec   = "aac"
	preset       = "medium"
	crf          = "23"
	audioBitrate = "128k"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ProbeDuration(ctx context.Context, in string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		in,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

func (a *Adapter) TranscodeSegment(ctx context.Context, in string, start, dur time.Duration, out string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg, segmentArgs(in, start, dur, out)...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg segment: %w\n%s", err, string(b))
	}
	return nil
}

// segmentArgs builds the full encoder invocation: seek, duration cap,
// square crop / fill-scale / exact crop filter chain, fixed codecs, and
// moov-atom relocation for streaming playback.
func segmentArgs(in string, start, dur time.Duration, out string) []string {
	return []string{
		"-y",
		"-ss", fmtSeconds(start),
		"-i", in,
		"-t", fmtSeconds(dur),
		"-c:v", videoCodec,
		"-c:a", audioCodec,
		"-preset", preset,
		"-crf", crf,
		"-b:a", audioBitrate,
		"-vf", squareFilter(),
		"-movflags", "+faststart",
		"-f", "mp4",
		out,
	}
}

func squareFilter() string {
	side := strconv.Itoa(noteSide)
	return strings.Join([]string{
		`crop=min(iw\,ih):min(iw\,ih)`,
		"scale=" + side + ":" + side + ":force_original_aspect_ratio=increase",
		"crop=" + side + ":" + side,
	}, ",")
}

func fmtSeconds(d time.Duration) string {
	sec := float64(d) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
