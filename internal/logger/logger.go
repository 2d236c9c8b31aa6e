// Package logger wires the process-wide slog default. Output goes to
// a file so stdout stays clean for dump output; when the file cannot
// be opened, logging falls back to stderr instead of aborting.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func levelFromString(s string) (l slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return slog.LevelDebug, true
	case "info", "inf":
		return slog.LevelInfo, true
	case "warn", "wrn":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// InitLogger points slog at the given file with the given level name.
// Unknown level names mean info.
func InitLogger(path, level string) {
	loglevel, _ := levelFromString(level)

	var w io.Writer = os.Stderr
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = logFile
		}
	}

	// https://cs.opensource.google/go/go/+/refs/tags/go1.24.1:src/log/slog/handler.go;l=265-315;drc=3d61de41a28b310fedc345d76320829bd08146b3
	// slog defaults to logging in the order of time, level, msg, and other attributes.
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: loglevel})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}
