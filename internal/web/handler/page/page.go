// Package page renders every page of the site with the configured navbar.
package page

import (
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/tailnav/asset"
	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/internal/web/handler"
	"github.com/GoPowerDNS-Admin/tailnav/internal/web/navigation"
)

const (
	// Path matches every page.
	Path = handler.RootPath + "*"

	// TemplateName is the name of the page template.
	TemplateName = "page/page"
)

var renders = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "tailnav",
		Name:      "navbar_renders_total",
		Help:      "Number of rendered navbars, differentiated by result.",
	},
	[]string{"result"},
)

// Service is the page handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	items  handler.ItemSource
	assets template.HTML
}

// Handler is the page handler.
var Handler = Service{}

// Init initializes the page handler. Register it after all other routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, items handler.ItemSource) error {
	if app == nil || cfg == nil || items == nil {
		log.Fatal().Msg(handler.ErrNilACIFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.items = items
	s.assets = AssetLinks(cfg.Assets, asset.MinifiedTailwindDark(), asset.NavbarScript())

	app.Get(Path, s.Get)

	return nil
}

// Get renders the page of the requested path.
// Paths which are neither the root nor an item url are answered with 404.
func (s *Service) Get(c *fiber.Ctx) error {
	items, err := s.items.Items()
	if err != nil {
		renders.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("can't load navbar items")

		return c.Status(fiber.StatusInternalServerError).SendString("failed to load the menu")
	}

	nav := navigation.NewContext("", c.Path())

	status := fiber.StatusOK
	if !nav.BreadcrumbsFrom(items) && nav.CurrentPath != handler.RootPath {
		status = fiber.StatusNotFound
	}

	if nav.PageTitle == "" {
		nav.PageTitle = s.cfg.Title
	}

	navbarHTML, err := nav.Render(s.cfg.Navbar.Apply(nav.NavBar()).Items(items))
	if err != nil {
		renders.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("path", nav.CurrentPath).Msg("can't render navbar")

		return c.Status(fiber.StatusInternalServerError).SendString("failed to render the navbar")
	}

	renders.WithLabelValues("ok").Inc()

	return c.Status(status).Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Navbar":     navbarHTML,
		"Assets":     s.assets,
		"NotFound":   status == fiber.StatusNotFound,
	}, handler.BaseLayout)
}

// AssetLinks renders the link and script tags of bundles.
func AssetLinks(cfg config.Assets, bundles ...asset.Bundle) template.HTML {
	aliases := Aliases(cfg)

	var b strings.Builder

	for _, bundle := range bundles {
		if err := bundle.Links(aliases).Render(&b); err != nil {
			log.Error().Err(err).Msg("can't render asset links")
		}
	}

	return template.HTML(b.String()) //nolint:gosec
}

// Aliases maps the asset path aliases to the configured locations.
func Aliases(cfg config.Assets) asset.Aliases {
	return asset.Aliases{
		"@assets":    cfg.BasePath,
		"@assetsUrl": cfg.BaseURL,
	}
}
