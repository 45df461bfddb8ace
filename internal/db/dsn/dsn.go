// Package dsn builds database connection strings and gorm dialectors from the config.
package dsn

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/tailnav/internal/config"
)

// ErrNoEngine is returned when no gorm engine is configured.
var ErrNoEngine = errors.New("no database engine configured")

// Create builds the Data Source Name of the configured engine.
func Create(cfg *config.DB) string {
	switch cfg.GormEngine {
	case config.GormEnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
		)

		if cfg.Extras != "" {
			out += " " + cfg.Extras
		}

		return out
	case config.GormEngineSQLite:
		if cfg.Extras == "" {
			return cfg.Name
		}

		sep := "?"
		if strings.Contains(cfg.Name, "?") {
			sep = "&"
		}

		return cfg.Name + sep + cfg.Extras
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
			cfg.Extras,
		)
	}
}

// Dialector returns the gorm dialector of the configured engine.
func Dialector(cfg *config.DB) (gorm.Dialector, error) {
	switch cfg.GormEngine {
	case config.GormEngineMySQL:
		return mysql.Open(Create(cfg)), nil
	case config.GormEnginePostgres:
		return postgres.Open(Create(cfg)), nil
	case config.GormEngineSQLite:
		return sqlite.Open(Create(cfg)), nil
	case "":
		return nil, ErrNoEngine
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.GormEngine)
	}
}
