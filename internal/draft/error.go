package draft

import "errors"

var (
	// ErrSaveFailed and ErrSubmitFailed wrap transient upstream failures;
	// both are recoverable by retry. ErrCancelled marks a cooperative
	// abort and is not a failure.
	ErrSaveFailed   = errors.New("failed to save draft")
	ErrSubmitFailed = errors.New("failed to submit order")
	ErrCancelled    = errors.New("operation cancelled")

	// ErrInFlight is returned when a save or submit is started while
	// another is still outstanding. Callers are expected to gate on
	// IsSubmitting; the store refuses rather than queueing.
	ErrInFlight = errors.New("a save or submit is already in flight")

	ErrDraftNotFound = errors.New("draft not found")
)
