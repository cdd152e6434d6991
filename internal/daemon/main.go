// Package daemon assembles the backends from the configuration and runs the
// web service until shutdown.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/analytics"
	"github.com/linkdeck/linkdeck/internal/autosave"
	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/db/dsn"
	"github.com/linkdeck/linkdeck/internal/db/models"
	"github.com/linkdeck/linkdeck/internal/store"
	"github.com/linkdeck/linkdeck/internal/upload"
	"github.com/linkdeck/linkdeck/internal/web"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	saver      *autosave.Debouncer
}

// Start runs the web service and blocks until it was shut down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	err := d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))

	// pending autosaves never survive a shutdown; stop cleanly
	d.saver.Stop()

	return err
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openDB(cfg)

	var rdb *redis.Client

	if needsKV(cfg) {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	st := buildStore(cfg, db, rdb)

	seed(st)

	recorder := buildRecorder(cfg, db, rdb)

	saver := autosave.New(autosave.DefaultDelay, st.Save)

	uploads := upload.New(cfg.Upload.Root)
	if !uploads.Enabled() {
		log.Warn().Msg("no upload root configured, image uploads are disabled")
	}

	log.Info().
		Str("store", st.Name()).
		Str("analytics", cfg.Analytics.Backend).
		Msg("backends initialized")

	return &Daemon{
		cfg:   cfg,
		saver: saver,
		webService: web.New(cfg, &handler.Deps{
			Store:    st,
			Recorder: recorder,
			Saver:    saver,
			Uploads:  uploads,
		}),
	}
}

// openDB connects and migrates the database when a backend needs it. A
// connection or migration failure is logged and yields a nil handle; the
// dependent backends then fall back instead of taking the process down.
func openDB(cfg *config.Config) *gorm.DB {
	if !needsDB(cfg) {
		return nil
	}

	db, err := gorm.Open(dsn.Dialector(cfg), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect database, backends on it run degraded")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Document{},
		&models.Visit{},
	); err != nil {
		log.Error().Err(err).Msg("failed to migrate database, backends on it run degraded")
		return nil
	}

	return db
}

// buildStore selects the configured store, degrading to a stand-in that
// serves the bundled default page and refuses saves when init fails.
func buildStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) store.Store {
	st, err := store.New(cfg, db, rdb)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Store.Backend).
			Msg("store init failed, serving default page and refusing saves")

		return store.NewUnavailableStore(
			errors.Wrapf(err, "store backend %q unavailable", cfg.Store.Backend))
	}

	return st
}

// buildRecorder selects the configured recorder, degrading to a stand-in
// that reports the init failure on every dashboard request when init fails.
func buildRecorder(cfg *config.Config, db *gorm.DB, rdb *redis.Client) analytics.Recorder {
	rec, err := analytics.New(cfg, db, rdb)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Analytics.Backend).
			Msg("analytics init failed, visit tracking disabled")

		return analytics.NewUnavailableRecorder(
			errors.Wrapf(err, "analytics backend %q unavailable", cfg.Analytics.Backend))
	}

	return rec
}

// needsDB reports whether any configured backend runs on gorm.
func needsDB(cfg *config.Config) bool {
	return cfg.Store.Backend == config.StoreBackendDB ||
		cfg.Analytics.Backend == config.AnalyticsBackendDB
}

// needsKV reports whether any configured backend runs on redis.
func needsKV(cfg *config.Config) bool {
	return cfg.Store.Backend == config.StoreBackendKV ||
		cfg.Analytics.Backend == config.AnalyticsBackendKV
}
