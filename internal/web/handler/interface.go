package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkdeck/linkdeck/internal/analytics"
	"github.com/linkdeck/linkdeck/internal/autosave"
	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/store"
	"github.com/linkdeck/linkdeck/internal/upload"
)

// Deps bundles the backend services the handlers operate on.
type Deps struct {
	Store    store.Store
	Recorder analytics.Recorder
	Saver    *autosave.Debouncer
	Uploads  *upload.Service
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps) error
}
