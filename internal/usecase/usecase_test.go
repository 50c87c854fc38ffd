package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"roundbot/internal/i18n"
	"roundbot/internal/types"
)

func newTestEngine(t *testing.T, d Deps) (Engine, string) {
	t.Helper()
	base := t.TempDir()
	pol := Policy{
		TempDir:           base,
		MaxSourceDuration: 600 * time.Second,
		ExternalTimeout:   time.Minute,
	}
	return New(d, pol, zerolog.Nop()), base
}

func linkRequest(mode types.Mode) Request {
	return Request{
		ChatID: 42,
		Lang:   i18n.English,
		Mode:   mode,
		Ref:    types.ContentReference{Platform: types.PlatformYouTube, URL: "https://youtu.be/abc123"},
	}
}

func assertEmptyDir(t *testing.T, base string) {
	t.Helper()
	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("read temp base: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestProcessRoundDeliversSegmentsInOrder(t *testing.T) {
	ext := &fakeExtractor{info: types.SourceInfo{ID: "abc123", Duration: 125 * time.Second}}
	video := &fakeVideo{duration: 125 * time.Second}
	sink := &fakeSink{}
	notes := &fakeNotifier{}

	e, base := newTestEngine(t, Deps{
		Video: video, Extractor: ext, Uploads: &fakeUploads{}, Sink: sink, Notifier: notes,
	})

	if err := e.Process(context.Background(), linkRequest(types.ModeRound)); err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(sink.notes) != 3 {
		t.Fatalf("delivered %d notes, want 3", len(sink.notes))
	}
	for i, name := range sink.notes {
		if want := fmt.Sprintf("note-%03d.mp4", i); name != want {
			t.Fatalf("note %d delivered out of order: %q, want %q", i, name, want)
		}
	}
	wantStarts := []time.Duration{0, 60 * time.Second, 120 * time.Second}
	for i, start := range video.starts {
		if start != wantStarts[i] {
			t.Fatalf("segment %d start = %v, want %v", i, start, wantStarts[i])
		}
	}

	notice := i18n.T("videoLongerThanMinute", i18n.English, "125", "3")
	if !notes.has(notice) {
		t.Fatalf("length notice missing, got: %v", notes.texts)
	}
	if !notes.has(i18n.T("done", i18n.English)) {
		t.Fatalf("completion notice missing, got: %v", notes.texts)
	}
	assertEmptyDir(t, base)
}

func TestProcessRoundStopsAtDeliveryFailure(t *testing.T) {
	ext := &fakeExtractor{info: types.SourceInfo{ID: "abc123", Duration: 180 * time.Second}}
	video := &fakeVideo{duration: 180 * time.Second}
	sink := &fakeSink{failNoteAt: 1}
	notes := &fakeNotifier{}

	e, base := newTestEngine(t, Deps{
		Video: video, Extractor: ext, Uploads: &fakeUploads{}, Sink: sink, Notifier: notes,
	})

	err := e.Process(context.Background(), linkRequest(types.ModeRound))
	var df *types.DeliveryFailure
	if !errors.As(err, &df) {
		t.Fatalf("err = %v, want DeliveryFailure", err)
	}
	if df.Index != 1 {
		t.Fatalf("failed index = %d, want 1", df.Index)
	}
	// segments 0 and 1 attempted, 2 never produced
	if len(video.starts) != 2 {
		t.Fatalf("transcoded %d segments, want 2: %v", len(video.starts), video.starts)
	}
	if !notes.has(i18n.T("videoNoteSendFailed", i18n.English)) {
		t.Fatalf("send-failed notice missing, got: %v", notes.texts)
	}
	if notes.has(i18n.T("done", i18n.English)) {
		t.Fatal("completion notice emitted despite delivery failure")
	}
	assertEmptyDir(t, base)
}

func TestProcessRoundTranscodeFailure(t *testing.T) {
	ext := &fakeExtractor{info: types.SourceInfo{ID: "abc123", Duration: 90 * time.Second}}
	video := &fakeVideo{duration: 90 * time.Second, fail: true, failAt: 0}
	sink := &fakeSink{}

	e, base := newTestEngine(t, Deps{
		Video: video, Extractor: ext, Uploads: &fakeUploads{}, Sink: sink, Notifier: &fakeNotifier{},
	})

	err := e.Process(context.Background(), linkRequest(types.ModeRound))
	var tf *types.TranscodeFailure
	if !errors.As(err, &tf) {
		t.Fatalf("err = %v, want TranscodeFailure", err)
	}
	if len(sink.notes) != 0 {
		t.Fatalf("notes delivered despite encoder failure: %v", sink.notes)
	}
	assertEmptyDir(t, base)
}

func TestProcessRegularForwardsWithoutPipeline(t *testing.T) {
	ext := &fakeExtractor{info: types.SourceInfo{ID: "abc123", Duration: 125 * time.Second}}
	video := &fakeVideo{duration: 125 * time.Second}
	sink := &fakeSink{}

	e, base := newTestEngine(t, Deps{
		Video: video, Extractor: ext, Uploads: &fakeUploads{}, Sink: sink, Notifier: &fakeNotifier{},
	})

	if err := e.Process(context.Background(), linkRequest(types.ModeRegular)); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(sink.videos) != 1 {
		t.Fatalf("sent %d full videos, want 1", len(sink.videos))
	}
	if len(video.starts) != 0 {
		t.Fatal("regular mode must not invoke the encoder")
	}
	assertEmptyDir(t, base)
}

func TestProcessRejectsTooLongBeforeDownload(t *testing.T) {
	ext := &fakeExtractor{info: types.SourceInfo{ID: "abc123", Duration: 601 * time.Second}}

	e, base := newTestEngine(t, Deps{
		Video: &fakeVideo{}, Extractor: ext, Uploads: &fakeUploads{}, Sink: &fakeSink{}, Notifier: &fakeNotifier{},
	})

	err := e.Process(context.Background(), linkRequest(types.ModeRound))
	var pv *types.PolicyViolation
	if !errors.As(err, &pv) {
		t.Fatalf("err = %v, want PolicyViolation", err)
	}
	if ext.downloads != 0 {
		t.Fatalf("download issued despite policy rejection (%d calls)", ext.downloads)
	}
	assertEmptyDir(t, base)
}

func TestProcessRejectsUnprobeableSource(t *testing.T) {
	ext := &fakeExtractor{info: types.SourceInfo{ID: "abc123", Duration: 0}}

	e, base := newTestEngine(t, Deps{
		Video: &fakeVideo{}, Extractor: ext, Uploads: &fakeUploads{}, Sink: &fakeSink{}, Notifier: &fakeNotifier{},
	})

	err := e.Process(context.Background(), linkRequest(types.ModeRound))
	var pv *types.PolicyViolation
	if !errors.As(err, &pv) {
		t.Fatalf("err = %v, want PolicyViolation", err)
	}
	assertEmptyDir(t, base)
}

func TestProcessProbeFailure(t *testing.T) {
	ext := &fakeExtractor{probeErr: errors.New("network down")}

	e, base := newTestEngine(t, Deps{
		Video: &fakeVideo{}, Extractor: ext, Uploads: &fakeUploads{}, Sink: &fakeSink{}, Notifier: &fakeNotifier{},
	})

	err := e.Process(context.Background(), linkRequest(types.ModeRound))
	var mf *types.MaterializationFailure
	if !errors.As(err, &mf) {
		t.Fatalf("err = %v, want MaterializationFailure", err)
	}
	if mf.Platform != types.PlatformYouTube {
		t.Fatalf("failure platform = %s", mf.Platform)
	}
	assertEmptyDir(t, base)
}

func TestProcessMissingDownloadOutput(t *testing.T) {
	ext := &fakeExtractor{
		info:      types.SourceInfo{ID: "abc123", Duration: 30 * time.Second},
		skipWrite: true,
	}

	e, base := newTestEngine(t, Deps{
		Video: &fakeVideo{}, Extractor: ext, Uploads: &fakeUploads{}, Sink: &fakeSink{}, Notifier: &fakeNotifier{},
	})

	err := e.Process(context.Background(), linkRequest(types.ModeRound))
	var mf *types.MaterializationFailure
	if !errors.As(err, &mf) {
		t.Fatalf("err = %v, want MaterializationFailure", err)
	}
	assertEmptyDir(t, base)
}

func TestProcessUploadRound(t *testing.T) {
	video := &fakeVideo{duration: 45 * time.Second}
	sink := &fakeSink{}

	e, base := newTestEngine(t, Deps{
		Video: video, Extractor: &fakeExtractor{}, Uploads: &fakeUploads{}, Sink: sink, Notifier: &fakeNotifier{},
	})

	req := Request{
		ChatID: 7,
		Lang:   i18n.Russian,
		Mode:   types.ModeRound,
		Ref:    types.ContentReference{FileID: "BAACAgIAAxkBA"},
	}
	if err := e.Process(context.Background(), req); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(sink.notes) != 1 {
		t.Fatalf("delivered %d notes, want 1", len(sink.notes))
	}
	assertEmptyDir(t, base)
}

// --- fakes ---

type fakeVideo struct {
	duration time.Duration
	fail     bool
	failAt   int
	starts   []time.Duration
}

func (f *fakeVideo) ProbeDuration(_ context.Context, _ string) (time.Duration, error) {
	return f.duration, nil
}

func (f *fakeVideo) TranscodeSegment(_ context.Context, _ string, start, _ time.Duration, out string) error {
	if f.fail && len(f.starts) == f.failAt {
		return errors.New("encoder exit 1")
	}
	f.starts = append(f.starts, start)
	return os.WriteFile(out, []byte("clip"), 0o644)
}

type fakeExtractor struct {
	info      types.SourceInfo
	probeErr  error
	skipWrite bool
	downloads int
}

func (f *fakeExtractor) Probe(_ context.Context, _ string) (types.SourceInfo, error) {
	if f.probeErr != nil {
		return types.SourceInfo{}, f.probeErr
	}
	return f.info, nil
}

func (f *fakeExtractor) Download(_ context.Context, _ types.Platform, _, out string) error {
	f.downloads++
	if f.skipWrite {
		return nil
	}
	return os.WriteFile(out, []byte("source"), 0o644)
}

type fakeUploads struct{}

func (f *fakeUploads) FetchUpload(_ context.Context, _, out string) error {
	return os.WriteFile(out, []byte("upload"), 0o644)
}

type fakeSink struct {
	failNoteAt int
	videos     []string
	notes      []string
}

func (f *fakeSink) SendVideo(_ context.Context, _ int64, path string) error {
	f.videos = append(f.videos, path)
	return nil
}

func (f *fakeSink) SendVideoNote(_ context.Context, _ int64, name string, _ []byte) error {
	if f.failNoteAt > 0 && len(f.notes) == f.failNoteAt {
		return errors.New("transport rejected send")
	}
	f.notes = append(f.notes, name)
	return nil
}

type fakeNotifier struct {
	texts []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ int64, text string) {
	f.texts = append(f.texts, text)
}

func (f *fakeNotifier) has(text string) bool {
	for _, t := range f.texts {
		if t == text {
			return true
		}
	}
	return false
}
