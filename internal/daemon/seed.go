package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/internal/db/controller/menu"
)

// seed stores the config menu if the database has none yet.
func seed(cfg *config.Config, db *gorm.DB) error {
	count, err := menu.Count(db, cfg.DB.Menu)
	if err != nil {
		return errors.Wrap(err, "can't count menu items")
	}

	if count > 0 || len(cfg.Navbar.Items) == 0 {
		return nil
	}

	if err = menu.Save(db, cfg.DB.Menu, cfg.Navbar.Items); err != nil {
		return errors.Wrap(err, "can't seed menu")
	}

	log.Info().Str("menu", cfg.DB.Menu).Int("items", len(cfg.Navbar.Items)).Msg("menu seeded from config")

	return nil
}
