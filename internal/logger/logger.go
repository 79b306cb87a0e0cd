// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	closer        io.Closer
)

// Options configures Initialize.
type Options struct {
	// Level is "debug", "info", "warn" or "error". Empty means "info".
	Level string
	// Path is the log file. Empty logs to Writer.
	Path string
	// Writer is used when Path is empty. Nil means os.Stderr.
	Writer io.Writer
	JSON   bool
}

// Initialize replaces the default logger. Call Close when done to release
// a log file.
func Initialize(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	var c io.Closer
	switch {
	case opts.Path != "":
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w, c = f, f
	case opts.Writer != nil:
		w = opts.Writer
	}

	ho := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
	}
	defaultLogger = slog.New(h)
	closer = c
	slog.SetDefault(defaultLogger)
	return nil
}

// Close releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Get returns the default logger.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return defaultLogger
}

// Debug logs a debug level message
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs an info level message
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs a warning level message
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs an error level message
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger { return Get().With(args...) }
