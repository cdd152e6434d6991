package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/linkdeck/linkdeck/internal/page"
)

// UnavailableStore stands in when the configured backend could not be
// initialized. Loads fail with the init cause, which LoadOrDefault turns
// into the bundled default document; saves report the same cause so the
// editor can tell the operator what is wrong instead of the process dying.
type UnavailableStore struct {
	cause error
}

// NewUnavailableStore creates a stand-in store carrying the init failure.
func NewUnavailableStore(cause error) *UnavailableStore {
	if cause == nil {
		cause = ErrBackendUnavailable
	}

	return &UnavailableStore{cause: cause}
}

// Name returns the name of this store backend.
func (s *UnavailableStore) Name() string {
	return "unavailable"
}

// Load always fails with the init cause.
func (s *UnavailableStore) Load(ctx context.Context) (*page.Document, error) {
	return nil, s.cause
}

// Save refuses the write with the init cause.
func (s *UnavailableStore) Save(ctx context.Context, doc *page.Document) error {
	return errors.Wrap(s.cause, "cannot save settings document")
}

// Ping always fails with the init cause.
func (s *UnavailableStore) Ping(ctx context.Context) error {
	return s.cause
}
