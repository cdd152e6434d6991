package analytics

import "context"

// UnavailableRecorder stands in when the configured backend could not be
// initialized. Both operations fail with the init cause; visit recording is
// fire-and-forget at the call sites, so the public page keeps serving while
// the dashboard reports the configuration problem.
type UnavailableRecorder struct {
	cause error
}

// NewUnavailableRecorder creates a stand-in recorder carrying the init failure.
func NewUnavailableRecorder(cause error) *UnavailableRecorder {
	if cause == nil {
		cause = ErrBackendUnavailable
	}

	return &UnavailableRecorder{cause: cause}
}

// Record always fails with the init cause.
func (r *UnavailableRecorder) Record(ctx context.Context, v Visit) error {
	return r.cause
}

// Aggregate always fails with the init cause.
func (r *UnavailableRecorder) Aggregate(ctx context.Context, rng Range) (*Summary, error) {
	return nil, r.cause
}
