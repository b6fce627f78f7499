package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the bootstrap logger: JSON to stdout at the level named by
// LOG_LEVEL (debug, info, warn, error; anything else means info). main later
// replaces the default with a MultiHandler that adds the system_logs sink
// once the database is up.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
