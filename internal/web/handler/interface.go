// Package handler contains the shared contracts of the web handlers.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/navbar"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, items ItemSource) error
}

// ItemSource provides the navbar items of a request.
type ItemSource interface {
	Items() ([]navbar.Item, error)
}

// StaticItems serves a fixed item tree, e.g. from the config file.
type StaticItems []navbar.Item

// Items implements ItemSource.
func (s StaticItems) Items() ([]navbar.Item, error) {
	return s, nil
}
