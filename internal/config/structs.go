package config

import (
	"github.com/GoPowerDNS-Admin/tailnav/internal/logger"
	"github.com/GoPowerDNS-Admin/tailnav/navbar"
	"github.com/GoPowerDNS-Admin/tailnav/tag"
)

// Supported gorm engines.
const (
	GormEngineMySQL    = "mysql"
	GormEnginePostgres = "postgres"
	GormEngineSQLite   = "sqlite"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Assets    Assets
	Navbar    Navbar
}

// DB holds the database configuration settings.
// An empty GormEngine disables the database and the menu is read from the config.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string // database name, file name for sqlite
	GormEngine string // mysql, postgres or sqlite
	Menu       string // name of the menu to load, default "main"
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	MetricsPath    string // path of the prometheus endpoint, empty disables it
}

// Assets maps asset path aliases.
type Assets struct {
	BaseURL  string // value of @assetsUrl, default /assets
	BasePath string // value of @assets
}

// Navbar configures the navigation bar rendered on every page.
type Navbar struct {
	ID                   string
	Brand                string         // raw brand markup, replaces the brand block
	BrandText            string         `toml:"brandText"`
	BrandImage           string         `toml:"brandImage"`
	BrandLink            *string        `toml:"brandLink"` // nil keeps the default "/"
	Color                string         `validate:"omitempty,navbarcolor"`
	WithoutDefaultTheme  bool           `toml:"withoutDefaultTheme"`
	WithoutActivateItems bool           `toml:"withoutActivateItems"`
	Attributes           tag.Attributes `toml:"attributes"`
	ContainerAttributes  tag.Attributes `toml:"containerAttributes"`
	ItemsAttributes      tag.Attributes `toml:"itemsAttributes"`
	ToggleAttributes     tag.Attributes `toml:"toggleAttributes"`
	BrandTextAttributes  tag.Attributes `toml:"brandTextAttributes"`
	BrandImageAttributes tag.Attributes `toml:"brandImageAttributes"`
	ItemsFile            string         `toml:"itemsFile"` // optional toml, yaml or json file with the items
	Items                []navbar.Item  `toml:"items"`
}
