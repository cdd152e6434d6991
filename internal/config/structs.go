package config

import (
	"github.com/linkdeck/linkdeck/internal/logger"
)

// Store backends.
const (
	StoreBackendFile = "file" // JSON document on local disk
	StoreBackendKV   = "kv"   // single key in redis
	StoreBackendDB   = "db"   // single row in a relational table
)

// Analytics backends.
const (
	AnalyticsBackendDB = "db" // append-only visit rows, aggregated at read time
	AnalyticsBackendKV = "kv" // pre-aggregated redis hashes
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Store     Store
	Analytics Analytics
	Upload    Upload
	Redis     Redis
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	AdminToken     string // shared token guarding the editor and write APIs; empty = open
}

// Store selects how the settings document is persisted.
type Store struct {
	Backend  string // file, kv or db
	FilePath string // json file location for the file backend
	Key      string // redis key for the kv backend
}

// Analytics selects how page visits are counted.
type Analytics struct {
	Backend string // db or kv
}

// Upload holds the local object store settings for uploaded images.
type Upload struct {
	Root string // directory the upload objects are written to; empty = uploads refused
}

// Redis holds the connection settings for the kv backends.
type Redis struct {
	Addr     string
	Password string
	DB       int
}
