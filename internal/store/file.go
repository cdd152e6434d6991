package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/linkdeck/linkdeck/internal/page"
)

// FileStore keeps the settings document as one pretty-printed JSON file on
// local disk. Writes go through a temp file and a rename, so a crashed save
// never leaves a half-written document behind.
type FileStore struct {
	path string
}

// NewFileStore creates a file backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Name returns the backend name for logging.
func (s *FileStore) Name() string { return "file" }

// Load reads and decodes the document file.
func (s *FileStore) Load(_ context.Context) (*page.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to read settings document file")
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode settings document file")
	}

	return doc, nil
}

// Save overwrites the document file atomically.
func (s *FileStore) Save(_ context.Context, doc *page.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings document")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return errors.Wrap(err, "failed to create settings document directory")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return errors.Wrap(err, "failed to write settings document file")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace settings document file")
	}

	return nil
}

// Ping checks that the document directory is usable.
func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return errors.Wrap(ErrBackendUnavailable, err.Error())
	}

	return nil
}
