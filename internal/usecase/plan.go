package usecase

import (
	"time"

	"roundbot/internal/types"
)

// Plan slices a probed total duration into ≤60s segments. Segment i
// starts at i*60s and runs for min(60s, remainder). A source that probes
// to zero or negative duration is an error, never a zero-segment plan.
func Plan(total time.Duration) ([]types.Segment, error) {
	if total <= 0 {
		return nil, types.ErrZeroDuration
	}

	n := int(total / types.SegmentLength)
	if total%types.SegmentLength != 0 {
		n++
	}

	segs := make([]types.Segment, 0, n)
	for i := 0; i < n; i++ {
		start := time.Duration(i) * types.SegmentLength
		dur := types.SegmentLength
		if remaining := total - start; remaining < dur {
			dur = remaining
		}
		segs = append(segs, types.Segment{Index: i, Start: start, Duration: dur})
	}
	return segs, nil
}
