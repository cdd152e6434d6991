package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownStoreBackend error if config store.backend is not file, kv or db.
	ErrUnknownStoreBackend = errors.New("toml config store.backend must be one of file, kv, db")

	// ErrUnknownAnalyticsBackend error if config analytics.backend is not db or kv.
	ErrUnknownAnalyticsBackend = errors.New("toml config analytics.backend must be one of db, kv")

	// ErrRedisAddrMissing error if a kv backend is selected without redis.addr.
	ErrRedisAddrMissing = errors.New("toml config redis.addr is required for the kv backend")
)
