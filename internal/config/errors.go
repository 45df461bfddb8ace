package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be one of mysql, postgres, sqlite")

	// ErrUnknownItemsFormat error if an items file has an unsupported extension.
	ErrUnknownItemsFormat = errors.New("items file must be .toml, .yaml, .yml or .json")
)
