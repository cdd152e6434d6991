// Package upload accepts image uploads from the editor.
package upload

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/config"
	uploadstore "github.com/linkdeck/linkdeck/internal/upload"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

// Path is the path to the upload endpoint.
const Path = handler.APIPath + "/upload"

// Service is the upload endpoint handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	uploads *uploadstore.Service
}

// Handler is the upload endpoint handler.
var Handler = Service{}

// Init initializes the upload endpoint handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.uploads = deps.Uploads

	app.Post(Path, s.Post)

	return nil
}

// Post stores one multipart image and returns its public URL. The folder
// form field groups objects (avatar, cover, favicon, links).
func (s *Service) Post(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "missing file field")
	}

	src, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open multipart file")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to read upload")
	}
	defer func() {
		_ = src.Close()
	}()

	folder := c.FormValue("folder", "")
	contentType := fh.Header.Get(fiber.HeaderContentType)

	url, err := s.uploads.Store(folder, fh.Filename, contentType, fh.Size, src)
	if err != nil {
		status := fiber.StatusBadRequest

		switch {
		case errors.Is(err, uploadstore.ErrUploadsDisabled):
			status = fiber.StatusServiceUnavailable
		case errors.Is(err, uploadstore.ErrFileTooLarge):
			status = fiber.StatusRequestEntityTooLarge
		case errors.Is(err, uploadstore.ErrFileTypeNotAllowed),
			errors.Is(err, uploadstore.ErrFileEmpty):
			// bad request
		default:
			log.Error().Err(err).Str("filename", fh.Filename).Msg("upload failed")

			status = fiber.StatusInternalServerError
		}

		return handler.JSONError(c, status, err.Error())
	}

	log.Info().
		Str("filename", fh.Filename).
		Str("folder", folder).
		Str("url", url).
		Int64("size", fh.Size).
		Msg("upload stored")

	return c.JSON(fiber.Map{"url": url})
}
