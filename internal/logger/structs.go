package logger

// Console implements a console based logger.
type Console struct {
	Enabled bool `toml:"enabled"`
	// Pretty uses the zerolog console writer instead of json lines.
	Pretty bool `toml:"pretty"`
}

// Rolling configures one lumberjack rotated log file.
type Rolling struct {
	Name       string `toml:"name"`
	MaxSize    int    `toml:"maxSize"` // megabytes
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"` // days
	Compress   bool   `toml:"compress"`
}

// LogFile implements a file based logger, one file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access Rolling `toml:"access"`
	Error  Rolling `toml:"error"`
	Info   Rolling `toml:"info"`
	Trace  Rolling `toml:"trace"`
	Warn   Rolling `toml:"warn"`
}

// Log implements the logger config.
type Log struct {
	Level        string `toml:"level"` // trace, debug, info, warn, error.
	ReportCaller bool   `toml:"reportCaller"`
	ServiceName  string `toml:"serviceName"`

	// AccessLog writes http requests to the console. Does not overrule Console.Enabled.
	AccessLog bool `toml:"accessLog"`
	// SkipPaths are request paths which are never access logged, e.g. /metrics.
	SkipPaths []string `toml:"skipPaths"`

	Console Console `toml:"console"`
	File    LogFile `toml:"file"`
}
