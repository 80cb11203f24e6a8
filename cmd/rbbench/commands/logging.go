package commands

import (
	"io"
	"log/slog"
)

// NewLogger builds the slog logger described by cfg. cfg must have been validated.
func NewLogger(cfg LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level

	_ = level.UnmarshalText([]byte(cfg.Level))

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
