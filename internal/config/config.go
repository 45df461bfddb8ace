// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/tailnav/navbar"
)

// EnvConfigJSON holds a JSON document which overrides the toml config.
const EnvConfigJSON = "TAILNAV_CONFIG_JSON"

const (
	defaultShutDownTime = 5
	defaultAssetsURL    = "/assets"
	defaultMenu         = "main"
	defaultService      = "tailnav"
)

var structValidator = func() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("navbarcolor", func(fl validator.FieldLevel) bool {
		_, err := navbar.ParseColor(fl.Field().String())
		return err == nil
	})

	return v
}()

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	if c.Navbar.ItemsFile != "" {
		file := c.Navbar.ItemsFile
		if !filepath.IsAbs(file) {
			file = filepath.Join(path, file)
		}

		if c.Navbar.Items, err = ReadItems(file); err != nil {
			return c, err
		}
	}

	err = validate(&c)

	return c, err
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fills in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "", GormEngineMySQL, GormEnginePostgres, GormEngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if err := structValidator.Struct(c.Navbar); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errors.Wrap(navbar.ErrInvalidColor, invalidErrMessage)
		}

		return errors.Wrap(err, invalidErrMessage)
	}

	if err := navbar.ValidateItems(c.Navbar.Items); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Assets.BaseURL == "" {
		c.Assets.BaseURL = defaultAssetsURL
	}

	if c.DB.Menu == "" {
		c.DB.Menu = defaultMenu
	}

	if c.Log.ServiceName == "" {
		c.Log.ServiceName = defaultService
	}

	return nil
}
