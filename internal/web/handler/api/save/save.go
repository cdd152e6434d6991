// Package save persists the editor's working copy.
//
// POST /api/save writes immediately (manual save button); POST /api/autosave
// queues the document behind the debouncer and returns before the write.
package save

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/autosave"
	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/page"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

const (
	// Path is the path to the manual save endpoint.
	Path = handler.APIPath + "/save"

	// AutosavePath is the path to the debounced save endpoint.
	AutosavePath = handler.APIPath + "/autosave"
)

// Service is the save endpoint handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	saver     *autosave.Debouncer
	validator *validator.Validate
}

// Handler is the save endpoint handler.
var Handler = Service{}

// Init initializes the save endpoint handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.saver = deps.Saver
	s.validator = validator.New()

	app.Post(Path, s.Post)
	app.Post(AutosavePath, s.PostAutosave)

	return nil
}

// parse reads the request body into a normalized, validated document.
func (s *Service) parse(c *fiber.Ctx) (*page.Document, error) {
	doc := new(page.Document)

	if err := c.BodyParser(doc); err != nil {
		return nil, err
	}

	doc.Normalize()

	if err := s.validator.Struct(doc); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Post validates the document and writes it through immediately, cancelling
// any pending debounced save. The store error is surfaced verbatim so the
// editor can show it.
func (s *Service) Post(c *fiber.Ctx) error {
	doc, err := s.parse(c)
	if err != nil {
		log.Warn().Err(err).Msg("save rejected")

		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := s.saver.Flush(c.Context(), doc); err != nil {
		log.Error().Err(err).Msg("save failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Int("links", len(doc.Links)).Msg("document saved")

	return c.JSON(fiber.Map{"success": true})
}

// PostAutosave validates the document and hands it to the debouncer. The
// response only acknowledges queueing; a failed background write surfaces on
// the next manual save.
func (s *Service) PostAutosave(c *fiber.Ctx) error {
	doc, err := s.parse(c)
	if err != nil {
		log.Warn().Err(err).Msg("autosave rejected")

		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	s.saver.Trigger(doc)

	return c.JSON(fiber.Map{"success": true, "queued": true})
}
