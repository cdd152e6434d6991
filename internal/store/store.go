// Package store persists the settings document behind a common adapter, so
// the rest of the application does not care whether the durable copy lives
// in a local file, a redis key or a relational row.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/page"
)

var (
	// ErrNotFound is returned by Load when the backend holds no document yet.
	ErrNotFound = errors.New("no settings document stored")
	// ErrBackendUnavailable is returned when the backend is missing or misconfigured.
	ErrBackendUnavailable = errors.New("store backend unavailable")
)

// Store is the data store adapter for the settings document. Save overwrites
// the whole document (last writer wins); there is no merge.
type Store interface {
	Load(ctx context.Context) (*page.Document, error)
	Save(ctx context.Context, doc *page.Document) error
	Ping(ctx context.Context) error
	Name() string
}

// New selects the configured backend.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendFile:
		return NewFileStore(cfg.Store.FilePath), nil
	case config.StoreBackendKV:
		if rdb == nil {
			return nil, ErrBackendUnavailable
		}
		return NewKVStore(rdb, cfg.Store.Key), nil
	case config.StoreBackendDB:
		if db == nil {
			return nil, ErrBackendUnavailable
		}
		return NewDBStore(db), nil
	default:
		return nil, ErrBackendUnavailable
	}
}

// LoadOrDefault loads the current document, degrading to the bundled default
// when the backend has nothing or cannot be reached. The public page must
// always render something, so read failures are logged, never propagated.
func LoadOrDefault(ctx context.Context, s Store) *page.Document {
	doc, err := s.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("store", s.Name()).Msg("no settings document yet, serving default")
		} else {
			log.Error().Err(err).Str("store", s.Name()).Msg("failed to load settings document, serving default")
		}

		return page.Default()
	}

	return doc
}

// decodeDocument unmarshals a stored document and normalizes legacy fields.
func decodeDocument(data []byte) (*page.Document, error) {
	var doc page.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	doc.Normalize()

	return &doc, nil
}

// encodeDocument marshals a document for storage, pretty-printed so the file
// backend stays hand-editable.
func encodeDocument(doc *page.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}
