package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// prefixStyle renders the program name in front of every log line.
var prefixStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#AA5CC3")).
	Bold(true).
	Padding(0, 1)

// newLogger returns a slog logger writing human-readable lines to w.
// An empty level means info.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefixStyle.Render("jellyscrape"),
		ReportTimestamp: lvl == log.DebugLevel,
		TimeFormat:      "15:04:05",
	})
	return slog.New(handler), nil
}

// printError writes a command failure to w in the logger's style.
func printError(w io.Writer, err error) {
	l := log.NewWithOptions(w, log.Options{Prefix: prefixStyle.Render("jellyscrape")})
	l.Error(err.Error())
}
