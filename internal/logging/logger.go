// Package logging builds the application logger. Output goes to a rotated
// file so it never draws over the terminal UI.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/f3rmion/readage/internal/config"
)

// DefaultFileName is used when the config leaves log.file empty.
const DefaultFileName = "readage.log"

// NewLogger creates a *slog.Logger from cfg and sets it as the default
// logger. Relative or empty file paths are placed in dir. The returned
// closer releases the log file.
//
// Format "json" writes JSON lines; anything else writes text with source
// info. Level is one of debug, info, warn, error; defaults to info.
func NewLogger(cfg config.LogConfig, dir string) (*slog.Logger, io.Closer) {
	path := cfg.File
	if path == "" {
		path = DefaultFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	logger := New(out, cfg)
	slog.SetDefault(logger)

	return logger, out
}

// New creates a logger writing to w.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
