// Package logging builds the zerolog loggers used by the binaries and tests.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "CHARON_LOG_LEVEL"
	EnvLogNoColor = "CHARON_LOG_NOCOLOR"
	EnvLogJSON    = "CHARON_LOG_JSON"
)

// Options control logger construction. Zero values mean info level with
// colored console output.
type Options struct {
	Level   zerolog.Level
	NoColor bool
	JSON    bool
}

// FromEnv reads logger options from the environment.
func FromEnv() Options {
	opts := Options{Level: zerolog.InfoLevel}
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogJSON)); ok {
		opts.JSON = v
	}
	return opts
}

// New returns a logger tagged with app that writes to out.
func New(app string, out io.Writer, opts Options) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		}
	}
	return zerolog.New(out).Level(opts.Level).With().Timestamp().Str("app", app).Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		return zerolog.InfoLevel, false
	case "off", "none":
		return zerolog.Disabled, true
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel, false
	}
	return lvl, true
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
