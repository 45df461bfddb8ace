// Package db opens the menu database.
package db

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
	"github.com/GoPowerDNS-Admin/tailnav/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/tailnav/internal/db/models"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.DB) (*gorm.DB, error) {
	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(&models.MenuItem{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}
