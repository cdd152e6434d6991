// Package editor renders the split-screen admin editor shell. All editing
// state lives in the browser against the JSON API; this handler only serves
// the page.
package editor

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/page"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

const (
	// Path is the path to the admin editor page.
	Path = "/admin"

	// TemplateName is the name of the editor template.
	TemplateName = "admin/editor"
)

// Service is the admin editor handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the admin editor handler.
var Handler = Service{}

// Init initializes the admin editor handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get renders the editor shell. The editor JS loads the actual document
// through GET /api/settings.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":        s.cfg.Title,
		"SNSPlatforms": page.SNSPlatforms(),
	}, handler.BaseLayout)
}
