// Package analytics exposes the visit counter: POST records one page view
// (fired by the public page tracker), GET aggregates for the dashboard.
package analytics

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/analytics"
	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

// Path is the path to the analytics endpoint.
const Path = handler.APIPath + "/analytics"

// recordRequest is the tracker's POST body.
type recordRequest struct {
	Source string `json:"source"`
	Path   string `json:"path"`
}

// Service is the analytics endpoint handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	recorder analytics.Recorder
}

// Handler is the analytics endpoint handler.
var Handler = Service{}

// Init initializes the analytics endpoint handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.recorder = deps.Recorder

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get aggregates visits for the dashboard. Range selection via the range
// query (all, 7d, 30d, 90d, 180d, custom) plus start/end dates for custom.
func (s *Service) Get(c *fiber.Ctx) error {
	rng, err := analytics.ParseRange(
		c.Query("range", ""),
		c.Query("start", ""),
		c.Query("end", ""),
		time.Now(),
	)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	sum, err := s.recorder.Aggregate(c.Context(), rng)
	if err != nil {
		log.Error().Err(err).Msg("analytics aggregation failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "aggregation failed")
	}

	return c.JSON(sum)
}

// Post records one page view. Recording is best effort: a backend failure is
// logged and acknowledged anyway so the tracker never retries.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(recordRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}

	v := analytics.Visit{
		CreatedAt: time.Now(),
		Source:    req.Source,
		Path:      req.Path,
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}

	if err := s.recorder.Record(c.Context(), v); err != nil {
		log.Error().Err(err).Msg("visit record failed")
	}

	return c.JSON(fiber.Map{"success": true})
}
