package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel is consulted when no level is given explicitly.
const EnvLevel = "EXRCONF_LOG_LEVEL"

var logLevel = new(slog.LevelVar)

// Configure installs a text handler on stderr as the default logger. stdout
// is left alone because some commands print artifacts there. level is one
// of DEBUG, INFO, WARN or ERROR; empty falls back to EXRCONF_LOG_LEVEL and
// then to WARN.
func Configure(level string) {
	ConfigureTo(os.Stderr, level)
}

func ConfigureTo(w io.Writer, level string) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	logLevel.Set(ParseLevel(level))

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func SetLevel(level slog.Level) {
	logLevel.Set(level)
}
