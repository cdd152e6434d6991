// Package reorder moves one content item in the editor's working copy.
//
// POST /api/reorder takes the working document plus a source and target item
// id, re-slots the source directly at the target's position and queues the
// result behind the debouncer, so drag-and-drop ordering is computed in one
// place instead of being spliced together client side.
package reorder

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

// Path is the path to the reorder endpoint.
const Path = handler.APIPath + "/reorder"

// Service is the reorder endpoint handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	saver     *autosave.Debouncer
	validator *validator.Validate
}

// Handler is the reorder endpoint handler.
var Handler = Service{}

// Init initializes the reorder endpoint handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.saver = deps.Saver
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

type request struct {
	Document *page.Document `json:"document"`
	SourceID string         `json:"sourceId"`
	TargetID string         `json:"targetId"`
}

// Post moves the source item to the target's slot and queues the reordered
// document for saving. Unknown ids reject the whole request; the client's
// copy is then stale and needs a reload.
func (s *Service) Post(c *fiber.Ctx) error {
	var req request

	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("reorder rejected")

		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.Document == nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "document is required")
	}

	doc := req.Document
	doc.Normalize()

	if err := s.validator.Struct(doc); err != nil {
		log.Warn().Err(err).Msg("reorder rejected")

		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := doc.Validate(); err != nil {
		log.Warn().Err(err).Msg("reorder rejected")

		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	links, err := page.Move(doc.Links, req.SourceID, req.TargetID)
	if err != nil {
		log.Warn().Err(err).
			Str("source", req.SourceID).
			Str("target", req.TargetID).
			Msg("reorder rejected")

		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	doc.Links = links
	s.saver.Trigger(doc)

	return c.JSON(fiber.Map{"success": true, "queued": true, "links": doc.Links})
}
