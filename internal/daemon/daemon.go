// Package daemon wires config, menu store and web service together.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/internal/db"
	"github.com/GoPowerDNS-Admin/tailnav/internal/db/controller/menu"
	"github.com/GoPowerDNS-Admin/tailnav/internal/web"
	"github.com/GoPowerDNS-Admin/tailnav/internal/web/handler"
)

// ErrConfigNil is returned by New without config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start starts the web service and blocks until it is shut down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}

// New creates a new Daemon instance with the provided configuration.
// Without a configured database the menu of the config file is served.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	d := &Daemon{cfg: cfg}

	items, err := d.itemSource()
	if err != nil {
		return nil, err
	}

	d.webService = web.New(cfg, items)

	return d, nil
}

func (d *Daemon) itemSource() (handler.ItemSource, error) {
	if d.cfg.DB.GormEngine == "" {
		log.Info().Int("items", len(d.cfg.Navbar.Items)).Msg("serving menu from config")

		return handler.StaticItems(d.cfg.Navbar.Items), nil
	}

	conn, err := db.Open(&d.cfg.DB)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	d.db = conn

	if err = seed(d.cfg, conn); err != nil {
		return nil, err
	}

	return menu.Store{DB: conn, Menu: d.cfg.DB.Menu}, nil
}
