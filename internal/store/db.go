package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/db/controller/document"
	"github.com/linkdeck/linkdeck/internal/page"
)

// DBStore keeps the settings document in the single JSON column row of the
// documents table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a gorm backed store.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Name returns the backend name for logging.
func (s *DBStore) Name() string { return "db" }

// Load reads and decodes the document row.
func (s *DBStore) Load(_ context.Context) (*page.Document, error) {
	row, err := document.Get(s.db)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to read settings document row")
	}

	doc, err := decodeDocument(row.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode settings document row")
	}

	return doc, nil
}

// Save overwrites the document row.
func (s *DBStore) Save(_ context.Context, doc *page.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings document")
	}

	if _, err := document.Set(s.db, data); err != nil {
		return errors.Wrap(err, "failed to write settings document row")
	}

	return nil
}

// Ping checks the underlying database connection.
func (s *DBStore) Ping(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(ErrBackendUnavailable, err.Error())
	}

	if err := sqlDB.Ping(); err != nil {
		return errors.Wrap(ErrBackendUnavailable, err.Error())
	}

	return nil
}
