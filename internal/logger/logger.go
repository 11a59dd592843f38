package logger

import (
	"io"
	"log/slog"
	"os"
)

// Level names accepted by Config.Level.
const (
	DEBUG = "debug"
	INFO  = "info"
	WARN  = "warn"
	ERROR = "error"
)

// Logger wraps slog.Logger so packages depend on one local type.
type Logger struct {
	*slog.Logger
}

// Config controls handler construction.
type Config struct {
	Level  string    // debug, info, warn or error; defaults to error
	Output io.Writer // defaults to os.Stderr
}

// New builds a text-handler logger from cfg. The default level is error so
// an interactive run emits nothing beyond the program's own streams.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var level slog.Level
	switch cfg.Level {
	case DEBUG:
		level = slog.LevelDebug
	case INFO:
		level = slog.LevelInfo
	case WARN:
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}
