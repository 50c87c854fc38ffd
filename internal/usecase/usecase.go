// Package usecase is the ingestion and segmentation engine: it turns a
// consumed content reference into delivered artifacts, owning the job's
// temp files from creation to unconditional cleanup.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"roundbot/internal/classify"
	"roundbot/internal/i18n"
	"roundbot/internal/job"
	"roundbot/internal/ports"
	"roundbot/internal/types"
)

type Deps struct {
	Video     ports.VideoTool
	Extractor ports.Extractor
	Uploads   ports.UploadFetcher
	Sink      ports.Sink
	Notifier  ports.Notifier
}

// Policy bounds the expensive work before it starts and caps every
// external invocation.
type Policy struct {
	TempDir           string
	MaxSourceDuration time.Duration
	ExternalTimeout   time.Duration
}

// Request is one consumed selection ready for processing.
type Request struct {
	ChatID int64
	Lang   i18n.Lang
	Mode   types.Mode
	Ref    types.ContentReference
}

type Engine struct {
	d   Deps
	pol Policy
	log zerolog.Logger
}

func New(d Deps, pol Policy, log zerolog.Logger) Engine {
	return Engine{d: d, pol: pol, log: log}
}

// Process runs one job end to end: materialize, then forward the full
// video or segment into round notes. All temp files for the job are
// removed before Process returns, whatever the outcome.
func (e Engine) Process(ctx context.Context, req Request) error {
	j, err := job.New(e.pol.TempDir, slugFor(req.Ref))
	if err != nil {
		return err
	}
	defer func() {
		if err := j.Cleanup(); err != nil {
			e.log.Error().Err(err).Str("job", j.ID).Msg("cleanup failed")
		}
	}()

	log := e.log.With().Str("job", j.ID).Logger()
	log.Info().Str("mode", string(req.Mode)).Msg("job started")

	in, err := e.materialize(ctx, j, req)
	if err != nil {
		log.Error().Err(err).Msg("materialization failed")
		return err
	}

	if req.Mode == types.ModeRegular {
		if err := e.d.Sink.SendVideo(ctx, req.ChatID, in); err != nil {
			log.Error().Err(err).Msg("full video delivery failed")
			return &types.DeliveryFailure{Index: 0, Err: err}
		}
		log.Info().Msg("full video delivered")
		return nil
	}

	if err := e.deliverRound(ctx, log, j, req, in); err != nil {
		return err
	}
	log.Info().Msg("job completed")
	return nil
}

// materialize produces the local input file for the reference inside the
// job's work directory.
func (e Engine) materialize(ctx context.Context, j *job.Job, req Request) (string, error) {
	if req.Ref.IsUpload() {
		e.say(ctx, req, "downloadingVideo")
		out := j.InputPath("input.mp4")
		fetchCtx, cancel := context.WithTimeout(ctx, e.pol.ExternalTimeout)
		defer cancel()
		if err := e.d.Uploads.FetchUpload(fetchCtx, req.Ref.FileID, out); err != nil {
			return "", &types.MaterializationFailure{Err: err}
		}
		if err := verifyFile(out); err != nil {
			return "", &types.MaterializationFailure{Err: err}
		}
		return out, nil
	}

	switch req.Ref.Platform {
	case types.PlatformYouTube:
		e.say(ctx, req, "downloadingFromYouTube")
	case types.PlatformInstagram:
		e.say(ctx, req, "downloadingFromInstagram")
	}

	probeCtx, cancel := context.WithTimeout(ctx, e.pol.ExternalTimeout)
	info, err := e.d.Extractor.Probe(probeCtx, req.Ref.URL)
	cancel()
	if err != nil {
		return "", &types.MaterializationFailure{Platform: req.Ref.Platform, Err: err}
	}
	if info.Duration <= 0 || info.Duration > e.pol.MaxSourceDuration {
		return "", &types.PolicyViolation{Reason: "too long"}
	}

	id := info.ID
	if req.Ref.Platform == types.PlatformInstagram {
		// The URL-derived ID keeps download paths stable even when the
		// extractor canonicalizes shared links.
		if urlID, err := classify.ExtractInstagramID(req.Ref.URL); err == nil {
			id = urlID
		}
	}

	out := j.InputPath(fmt.Sprintf("%s-%s.mp4", req.Ref.Platform, id))
	dlCtx, cancel := context.WithTimeout(ctx, e.pol.ExternalTimeout)
	defer cancel()
	if err := e.d.Extractor.Download(dlCtx, req.Ref.Platform, req.Ref.URL, out); err != nil {
		return "", &types.MaterializationFailure{Platform: req.Ref.Platform, Err: err}
	}
	if err := verifyFile(out); err != nil {
		return "", &types.MaterializationFailure{Platform: req.Ref.Platform, Err: err}
	}
	return out, nil
}

// deliverRound probes, plans, and walks the segments strictly in order.
// Each produced clip file is removed right after hand-off; a delivery
// failure aborts the remaining segments with no retry.
func (e Engine) deliverRound(ctx context.Context, log zerolog.Logger, j *job.Job, req Request, in string) error {
	probeCtx, cancel := context.WithTimeout(ctx, e.pol.ExternalTimeout)
	total, err := e.d.Video.ProbeDuration(probeCtx, in)
	cancel()
	if err != nil {
		return &types.MaterializationFailure{Platform: req.Ref.Platform, Err: err}
	}

	segs, err := Plan(total)
	if err != nil {
		return &types.MaterializationFailure{Platform: req.Ref.Platform, Err: err}
	}
	log.Info().Float64("duration_sec", total.Seconds()).Int("segments", len(segs)).Msg("segmentation planned")

	if len(segs) > 1 {
		e.say(ctx, req, "videoLongerThanMinute",
			strconv.Itoa(int(total/time.Second)), strconv.Itoa(len(segs)))
	}

	for _, seg := range segs {
		e.say(ctx, req, "processingPart",
			strconv.Itoa(seg.Index+1), strconv.Itoa(len(segs)))

		out := j.SegmentPath(seg.Index)
		encCtx, cancel := context.WithTimeout(ctx, e.pol.ExternalTimeout)
		err := e.d.Video.TranscodeSegment(encCtx, in, seg.Start, seg.Duration, out)
		cancel()
		if err != nil {
			return &types.TranscodeFailure{Index: seg.Index, Err: err}
		}

		data, err := os.ReadFile(out)
		if err != nil {
			return &types.TranscodeFailure{Index: seg.Index, Err: err}
		}
		// The clip file is ephemeral whether or not the send succeeds.
		if err := os.Remove(out); err != nil {
			log.Warn().Err(err).Int("segment", seg.Index).Msg("segment file not removed")
		}

		name := fmt.Sprintf("note-%03d.mp4", seg.Index)
		if err := e.d.Sink.SendVideoNote(ctx, req.ChatID, name, data); err != nil {
			e.say(ctx, req, "videoNoteSendFailed")
			return &types.DeliveryFailure{Index: seg.Index, Err: err}
		}
		log.Info().Int("segment", seg.Index).Msg("video note delivered")
	}

	e.say(ctx, req, "done")
	return nil
}

func (e Engine) say(ctx context.Context, req Request, key string, args ...string) {
	e.d.Notifier.Notify(ctx, req.ChatID, i18n.T(key, req.Lang, args...))
}

func slugFor(ref types.ContentReference) string {
	if ref.IsUpload() {
		return "upload"
	}
	return string(ref.Platform)
}

func verifyFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("expected output missing: %w", err)
	}
	if fi.Size() == 0 {
		return errors.New("materialized file is empty")
	}
	return nil
}
