package cli

import (
	"io"
	"log/slog"
)

// configureLogging installs a text handler on w as the default logger.
// Verbose mode enables debug records.
func configureLogging(verbose bool, w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
