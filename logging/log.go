package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%s: invalid log level", level)
}

// New returns a logger writing text to stderr, or JSON to a rotating file
// when file is set.
func New(level string, file string) (*slog.Logger, error) {
	return newLogger(os.Stderr, level, file)
}

func newLogger(stderr io.Writer, level string, file string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	if file == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil
	}

	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    8, // MB
		MaxBackups: 1,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 64
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}
