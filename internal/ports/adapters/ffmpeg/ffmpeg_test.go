package ffmpeg

import (
	"strings"
	"testing"
	"time"
)

func TestSegmentArgs(t *testing.T) {
	args := segmentArgs("/tmp/in.mp4", 120*time.Second, 60*time.Second, "/tmp/out.mp4")

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-ss 120.000",
		"-t 60.000",
		"-c:v libx264",
		"-c:a aac",
		"-preset medium",
		"-crf 23",
		"-b:a 128k",
		"-movflags +faststart",
		"-f mp4",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("args missing %q: %s", want, joined)
		}
	}
	if args[len(args)-1] != "/tmp/out.mp4" {
		t.Fatalf("output path must come last, got %q", args[len(args)-1])
	}
}

func TestSquareFilter(t *testing.T) {
	want := `crop=min(iw\,ih):min(iw\,ih),scale=384:384:force_original_aspect_ratio=increase,crop=384:384`
	if got := squareFilter(); got != want {
		t.Fatalf("filter = %q, want %q", got, want)
	}
}

func TestFmtSeconds(t *testing.T) {
	if got := fmtSeconds(90*time.Second + 500*time.Millisecond); got != "90.500" {
		t.Fatalf("fmtSeconds = %q", got)
	}
}

func TestNewDefaultsBinaries(t *testing.T) {
	a := New("", "")
	if a.ffmpeg != "ffmpeg" || a.ffprobe != "ffprobe" {
		t.Fatalf("defaults = %q, %q", a.ffmpeg, a.ffprobe)
	}
}
