package obs

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds the service logger: tinted console output for the
// dev/local/test envs, JSON everywhere else. level accepts the usual
// LOG_LEVEL strings (debug, info, warn, error); anything else means info.
func NewLogger(env, level string) *slog.Logger {
	lvl := parseLevel(level)
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      lvl,
			TimeFormat: time.RFC3339,
			AddSource:  true,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true,
		}))
	}
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
