// Package ytdlp shells out to the yt-dlp binary for link-based sources.
// Probe and download are separate invocations so policy checks can run
// before any payload bytes move.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"roundbot/internal/types"
)

// Some Instagram endpoints reject yt-dlp's default client string, so
// downloads from there carry a browser identity.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Adapter struct {
	bin string
}

func New(binPath string) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	return &Adapter{bin: binPath}
}

// metadata is the subset of yt-dlp's JSON dump the bot cares about.
type metadata struct {
	ID       string  `json:"id"`
	Duration float64 `json:"duration"`
}

func (a *Adapter) Probe(ctx context.Context, url string) (types.SourceInfo, error) {
	cmd := exec.CommandContext(ctx, a.bin,
		"--dump-single-json",
		"--no-warnings",
		url,
	)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return types.SourceInfo{}, fmt.Errorf("yt-dlp probe: %w\n%s", err, stderr.String())
	}

	var md metadata
	if err := json.Unmarshal(out.Bytes(), &md); err != nil {
		return types.SourceInfo{}, fmt.Errorf("parse yt-dlp metadata: %w", err)
	}
	if md.ID == "" {
		return types.SourceInfo{}, fmt.Errorf("yt-dlp metadata has no content id")
	}
	return types.SourceInfo{
		ID:       md.ID,
		Duration: time.Duration(md.Duration * float64(time.Second)),
	}, nil
}

func (a *Adapter) Download(ctx context.Context, platform types.Platform, url, out string) error {
	cmd := exec.CommandContext(ctx, a.bin, downloadArgs(platform, url, out)...)
	if b, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("yt-dlp download: %w\n%s", err, string(b))
	}
	return nil
}

func downloadArgs(platform types.Platform, url, out string) []string {
	args := []string{"-o", out, "--no-warnings"}
	switch platform {
	case types.PlatformInstagram:
		args = append(args, "-f", "best", "--add-header", "User-Agent: "+browserUserAgent)
	default:
		args = append(args, "-f", "mp4")
	}
	return append(args, url)
}
