// Package logger wires the process-wide slog output: JSON records to
// the console, a size-rotated file, or both.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/lumberjack.v2"

	"github.com/mss-eng/reportpdf/internal/config"
)

// Init installs the default slog logger per cfg. Call once at startup,
// before anything logs.
func Init(cfg config.LogConfig) {
	h := slog.NewJSONHandler(output(cfg), &slog.HandlerOptions{Level: Level(cfg.Level)})
	slog.SetDefault(slog.New(h))
	Info("logger ready", "level", cfg.Level, "file", cfg.File)
}

// output picks the log destination. A config with neither console nor
// file still gets stdout, so no setting can swallow logs entirely.
func output(cfg config.LogConfig) io.Writer {
	var sinks []io.Writer
	if cfg.Console {
		sinks = append(sinks, os.Stdout)
	}
	if cfg.File != "" {
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}

	switch len(sinks) {
	case 0:
		return os.Stdout
	case 1:
		return sinks[0]
	default:
		return io.MultiWriter(sinks...)
	}
}

// Level maps a config string onto a slog level. Unrecognized values
// mean info.
func Level(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Shims over the default logger.
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }
func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
