// Package job owns the per-job work directory. Every file the pipeline
// touches for one request lives under it, and Cleanup removes the whole
// directory no matter how the job ended.
package job

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Job is the unit of work once a format choice has been made. Work
// directories are disjoint across jobs, so cleanup can never touch
// another job's files.
type Job struct {
	ID      string
	WorkDir string
}

// New creates a job with a fresh work directory under baseDir. The slug
// carries the platform and content ID for log readability.
func New(baseDir, slug string) (*Job, error) {
	id := uuid.NewString()[:8]
	dir := filepath.Join(baseDir, fmt.Sprintf("%s-%s", slug, id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	return &Job{ID: id, WorkDir: dir}, nil
}

// InputPath is where the materialized source file goes.
func (j *Job) InputPath(name string) string {
	return filepath.Join(j.WorkDir, name)
}

// SegmentPath is the output path for the i-th transcoded segment.
func (j *Job) SegmentPath(i int) string {
	return filepath.Join(j.WorkDir, fmt.Sprintf("segment-%03d.mp4", i))
}

// Cleanup removes the work directory and everything in it. Safe to defer
// on every exit path; removing an already-removed dir is not an error.
func (j *Job) Cleanup() error {
	return os.RemoveAll(j.WorkDir)
}
