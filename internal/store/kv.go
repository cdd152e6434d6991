package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/linkdeck/linkdeck/internal/page"
)

// KVStore keeps the settings document as one JSON value under a fixed redis
// key. The backend serializes concurrent writes to the key on its own.
type KVStore struct {
	client *redis.Client
	key    string
}

// NewKVStore creates a redis backed store under the given key.
func NewKVStore(client *redis.Client, key string) *KVStore {
	return &KVStore{client: client, key: key}
}

// Name returns the backend name for logging.
func (s *KVStore) Name() string { return "kv" }

// Load reads and decodes the document key.
func (s *KVStore) Load(ctx context.Context) (*page.Document, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to read settings document key")
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode settings document key")
	}

	return doc, nil
}

// Save overwrites the document key. No expiry: the document lives forever.
func (s *KVStore) Save(ctx context.Context, doc *page.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings document")
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to write settings document key")
	}

	return nil
}

// Ping checks the redis connection.
func (s *KVStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(ErrBackendUnavailable, err.Error())
	}

	return nil
}
