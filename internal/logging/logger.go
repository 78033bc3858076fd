// Package logging wires log/slog to zerolog for the collect command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelWarn

var (
	// LogLevel Used for flags.
	LogLevel = DefaultLogLevel
	// LogJSON Used for flags.
	LogJSON bool
)

// ParseLogLevel converts a level name (debug, info, warn, error) to a
// slog.Level, ignoring case.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if strings.EqualFold(levelStr, l.String()) {
			return l, nil
		}
	}
	return DefaultLogLevel, errors.Errorf("unknown level string: '%s', defaulting to %s", levelStr, DefaultLogLevel)
}

// NewLogger returns a slog.Logger writing to w through zerolog, as JSON when
// LogJSON is set and in console format otherwise.
func NewLogger(w io.Writer) *slog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint

	var out io.Writer = w
	if !LogJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.StampMicro,
		}
	}

	// The slog handler stamps each record itself.
	zerologLogger := zerolog.New(out).
		With().
		Stack().
		Logger()

	return slog.New(
		slogzerolog.Option{
			Level:  LogLevel,
			Logger: &zerologLogger,
		}.NewZerologHandler(),
	)
}

// ConfigureLogger installs NewLogger(os.Stderr) as the slog default. Output
// goes to stderr so it never mixes with the JSON written to stdout.
func ConfigureLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}
