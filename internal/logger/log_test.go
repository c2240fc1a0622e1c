package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/lumberjack.v2"

	"github.com/mss-eng/reportpdf/internal/config"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := Level(tt.in); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutput(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "service.log")

	t.Run("console only", func(t *testing.T) {
		t.Parallel()
		w := output(config.LogConfig{Console: true})
		if w != io.Writer(os.Stdout) {
			t.Errorf("output() = %T, want os.Stdout", w)
		}
	})

	t.Run("file only rotates", func(t *testing.T) {
		t.Parallel()
		w := output(config.LogConfig{File: logFile, MaxSizeMB: 10})
		lj, ok := w.(*lumberjack.Logger)
		if !ok {
			t.Fatalf("output() = %T, want *lumberjack.Logger", w)
		}
		if lj.Filename != logFile || lj.MaxSize != 10 {
			t.Errorf("rotation config = %q/%d, want %q/10", lj.Filename, lj.MaxSize, logFile)
		}
	})

	t.Run("console and file fan out", func(t *testing.T) {
		t.Parallel()
		w := output(config.LogConfig{Console: true, File: logFile})
		if w == io.Writer(os.Stdout) {
			t.Error("output() = os.Stdout alone, want a fan-out writer")
		}
		if _, ok := w.(*lumberjack.Logger); ok {
			t.Error("output() = file alone, want a fan-out writer")
		}
	})

	t.Run("nothing configured still logs to stdout", func(t *testing.T) {
		t.Parallel()
		if w := output(config.LogConfig{}); w != io.Writer(os.Stdout) {
			t.Errorf("output() = %T, want os.Stdout", w)
		}
	})
}
