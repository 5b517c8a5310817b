package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nerrad567/qpudev-core/internal/infrastructure/config"
)

// ServiceName is attached to every record as the service attribute.
const ServiceName = "qpudev"

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Logger is a slog.Logger carrying the service and version attributes.
// It satisfies the Logger interfaces of catalog and mqtt.
type Logger struct {
	*slog.Logger
}

// New builds a logger from the logging section of config.yaml. Output is
// stdout unless "stderr"; format is JSON unless "text".
func New(cfg config.LoggingConfig, version string) *Logger {
	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.Output, "stderr") {
		out = os.Stderr
	}
	return newWithWriter(out, cfg, version)
}

func newWithWriter(out io.Writer, cfg config.LoggingConfig, version string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler = slog.NewJSONHandler(out, opts)
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(out, opts)
	}

	return &Logger{Logger: slog.New(h).With(
		"service", ServiceName,
		"version", version,
	)}
}

// parseLevel maps a level name case-insensitively; unknown names are info.
func parseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// With returns a child logger with extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Component returns a child logger tagged component=name.
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// Default is the logger used until the configuration has been loaded.
func Default() *Logger {
	return New(config.LoggingConfig{}, "dev")
}
