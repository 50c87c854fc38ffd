package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedReference indicates text that is neither a supported
	// link nor an extractable content ID.
	ErrUnrecognizedReference = errors.New("unrecognized reference")
	// ErrStaleSelection indicates a pending token that was already
	// consumed, swept, or never issued. A normal race, not a fault.
	ErrStaleSelection = errors.New("stale selection")
	// ErrZeroDuration indicates a probed source with no playable length.
	ErrZeroDuration = errors.New("source has zero duration")
)

// PolicyViolation rejects a source before any expensive work starts.
type PolicyViolation struct {
	Reason string
}

func (e *PolicyViolation) Error() string {
	return "policy violation: " + e.Reason
}

// MaterializationFailure covers probe/download/fetch failures, including
// an expected output file that never appeared.
type MaterializationFailure struct {
	Platform Platform
	Err      error
}

func (e *MaterializationFailure) Error() string {
	if e.Platform == "" {
		return fmt.Sprintf("materialize upload: %v", e.Err)
	}
	return fmt.Sprintf("materialize %s source: %v", e.Platform, e.Err)
}

func (e *MaterializationFailure) Unwrap() error { return e.Err }

// TranscodeFailure is a non-zero encoder exit for one segment.
type TranscodeFailure struct {
	Index int
	Err   error
}

func (e *TranscodeFailure) Error() string {
	return fmt.Sprintf("transcode segment %d: %v", e.Index, e.Err)
}

func (e *TranscodeFailure) Unwrap() error { return e.Err }

// DeliveryFailure is a transport rejection of one outbound artifact.
// It aborts the remaining segments of its job and nothing else.
type DeliveryFailure struct {
	Index int
	Err   error
}

func (e *DeliveryFailure) Error() string {
	return fmt.Sprintf("deliver artifact %d: %v", e.Index, e.Err)
}

func (e *DeliveryFailure) Unwrap() error { return e.Err }
