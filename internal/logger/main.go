// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logDirMode = 0o750

// LevelWriter splits log output by level.
// Trace and warn get their own writer, error and above share one, the rest goes to info.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel implements zerolog.LevelWriter.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel:
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter
	}

	if w == nil {
		return len(p), nil
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables console, file, both or no output at all.
func Init(cfg Log) error {
	logLevel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "loglevel %s is not supported", cfg.Level)
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	stack := false

	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	var writers []io.Writer

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fw, fileErr := newRollingLevelFiles(cfg.File)
		if fileErr != nil {
			return fileErr
		}

		writers = append(writers, fw)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// Rotated returns a lumberjack logger for r inside dir.
func Rotated(dir string, r Rolling) io.Writer {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, r.Name),
		MaxSize:    r.MaxSize,
		MaxAge:     r.MaxAge,
		MaxBackups: r.MaxBackups,
		Compress:   r.Compress,
	}
}

// MkLogDir creates the log directory if configured.
func MkLogDir(dir string) error {
	if dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, logDirMode); err != nil {
		return errors.Wrapf(err, "can't create log directory %s", dir)
	}

	return nil
}

func newRollingLevelFiles(cfg LogFile) (io.Writer, error) {
	if err := MkLogDir(cfg.Path); err != nil {
		return nil, err
	}

	return &LevelWriter{
		ErrorWriter: Rotated(cfg.Path, cfg.Error),
		InfoWriter:  Rotated(cfg.Path, cfg.Info),
		TraceWriter: Rotated(cfg.Path, cfg.Trace),
		WarnWriter:  Rotated(cfg.Path, cfg.Warn),
	}, nil
}

// NewConsoleWriter writes info and debug to stdout, everything else to stderr.
func NewConsoleWriter(cfg Log) io.Writer {
	out, errOut := io.Writer(os.Stdout), io.Writer(os.Stderr)

	if cfg.Console.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: zerolog.TimeFieldFormat}
		errOut = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: zerolog.TimeFieldFormat}
	}

	return &LevelWriter{
		ErrorWriter: errOut,
		InfoWriter:  out,
		TraceWriter: errOut,
		WarnWriter:  errOut,
	}
}
