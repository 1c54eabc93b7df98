package main

import (
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// newLogger builds the process logger: JSON lines by default, or
// charm's human readable output for the text format.
func newLogger(w io.Writer, format, level string) *slog.Logger {
	if format == "text" {
		lvl, err := charmlog.ParseLevel(level)
		if err != nil {
			lvl = charmlog.InfoLevel
		}
		return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Level:           lvl,
		}))
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
