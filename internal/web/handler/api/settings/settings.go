// Package settings serves the current settings document to the editor.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/store"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

// Path is the path to the settings endpoint.
const Path = handler.APIPath + "/settings"

// Service is the settings endpoint handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store store.Store
}

// Handler is the settings endpoint handler.
var Handler = Service{}

// Init initializes the settings endpoint handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.store = deps.Store

	app.Get(Path, s.Get)

	return nil
}

// Get returns the current document as JSON. Like the public page it falls
// back to the bundled sample document when the store cannot deliver, so the
// editor always has something to edit.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(store.LoadOrDefault(c.Context(), s.store))
}
