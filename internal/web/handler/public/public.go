// Package public renders the visitor-facing link page.
package public

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/page"
	"github.com/linkdeck/linkdeck/internal/store"
	"github.com/linkdeck/linkdeck/internal/web/handler"
)

const (
	// Path is the path to the public page.
	Path = handler.RootPath

	// TemplateName is the name of the public page template.
	TemplateName = "public/index"
)

// ItemView is one content item prepared for template rendering.
type ItemView struct {
	Item    page.Item
	IconURL string
	AdHTML  template.HTML
}

// Service is the public page handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store store.Store
}

// Handler is the public page handler.
var Handler = Service{}

// Init initializes the public page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACFatalLogMsg)
	}

	s.cfg = cfg
	s.store = deps.Store

	app.Get(Path, s.Get)

	return nil
}

// Get renders the public page. A store failure degrades to the bundled
// sample document so the page never breaks for visitors.
func (s *Service) Get(c *fiber.Ctx) error {
	doc := store.LoadOrDefault(c.Context(), s.store)

	query := c.Query("q", "")
	items := page.Search(page.Enabled(doc.Links), query)

	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		adHTML := it.AdHTML
		if it.Type == page.ItemTypeAd && adHTML == "" {
			// ad slots without their own markup show the global ad code
			adHTML = doc.CustomBodyCode
		}

		views = append(views, ItemView{
			Item:    it,
			IconURL: page.IconURL(it.Icon),
			AdHTML:  template.HTML(adHTML),
		})
	}

	title := doc.SiteTitle
	if title == "" {
		title = doc.Profile.Name
	}

	log.Debug().
		Int("items", len(views)).
		Str("query", query).
		Msg("public page rendered")

	return c.Render(TemplateName, fiber.Map{
		"Title":             title,
		"Favicon":           doc.FaviconURL,
		"HeadCode":          template.HTML(doc.CustomHeadCode),
		"BodyCode":          template.HTML(doc.CustomBodyCode),
		"Banner":            doc.AdBanner,
		"ShowProfile":       doc.ShowProfile(),
		"Profile":           doc.Profile,
		"Theme":             doc.Profile.Theme,
		"SearchEnabled":     doc.SearchEnabled,
		"SearchPlaceholder": doc.SearchPlaceholder,
		"Query":             query,
		"Items":             views,
	})
}
