// Package web serves the demo site: every page carries the configured navbar.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/tailnav/asset"
	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	accesslog "github.com/GoPowerDNS-Admin/tailnav/internal/logger/adapter/fiber"
	"github.com/GoPowerDNS-Admin/tailnav/internal/web/handler"
	"github.com/GoPowerDNS-Admin/tailnav/internal/web/handler/page"
)

// CheckAlivePath answers load balancer health checks.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	doneFiber := make(chan error)

	go func() {
		err := s.App.Listen(addr)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}

		doneFiber <- err
	}()

	return <-doneFiber
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the web service down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, items handler.ItemSource) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if items == nil {
		panic("items cannot be nil")
	}

	templateEngine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "tailnav",
			CaseSensitive:  true,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(accesslog.New(accesslog.Config{Config: cfg.Log}))

	if cfg.Webserver.CleanPath {
		app.Use(cleanPath)
	}

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	if cfg.Webserver.MetricsPath != "" {
		app.Get(cfg.Webserver.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	mountAssets(app, cfg.Assets.BaseURL, asset.MinifiedTailwindDark(), asset.NavbarScript())

	// the page handler catches every remaining path
	if err := page.Handler.Init(app, cfg, items); err != nil {
		log.Fatal().Err(err).Msg("can't init page handler")
	}

	return service
}

// mountAssets serves the publishable files of bundles below base.
// Files a bundle does not publish fall through to the next handler.
func mountAssets(app *fiber.App, base string, bundles ...asset.Bundle) {
	base = "/" + strings.Trim(base, "/")

	for _, bundle := range bundles {
		app.Use(base, filesystem.New(filesystem.Config{
			Root: http.FS(bundle.Source),
			Next: func(c *fiber.Ctx) bool {
				name := strings.TrimPrefix(strings.TrimPrefix(c.Path(), base), "/")

				ok, err := bundle.Allowed(name)
				if err != nil {
					log.Error().Err(err).Str("file", name).Msg("can't match asset")
				}

				return !ok
			},
		}))
	}
}

// cleanPath routes /docs//start like /docs/start.
func cleanPath(c *fiber.Ctx) error {
	if p := c.Path(); p != "/" {
		c.Path(path.Clean(p))
	}

	return c.Next()
}
