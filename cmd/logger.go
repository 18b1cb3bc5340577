package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// NewLogger returns a logger writing human-readable lines at level to w.
// If debug is not nil, every record down to debug level is also written to
// it as json.
func NewLogger(level string, w io.Writer, debug io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	var h slog.Handler = slogzerolog.Option{Level: lvl, Logger: &zl}.NewZerologHandler()

	if debug != nil {
		h = slogmulti.Fanout(h, slog.NewJSONHandler(debug, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(h), nil
}
