package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

// Options configures the process logger
type Options struct {
	Level  string
	Format string // text or json
	Color  bool
	Writer io.Writer

	Fluent FluentOptions
}

// FluentOptions configures the optional Fluent Bit sink
type FluentOptions struct {
	Enabled bool
	Host    string
	Port    int
	Tag     string
	Level   string
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// New builds a logger writing to the console and, when enabled, to Fluent
// Bit. The returned close func flushes the fluent client.
func New(opts Options) (*slog.Logger, func() error, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	level := ParseLevel(opts.Level)

	var console slog.Handler
	switch {
	case opts.Format == "json":
		console = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{Level: level})
	case opts.Color:
		console = tint.NewHandler(opts.Writer, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		console = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: level})
	}

	noop := func() error { return nil }
	if !opts.Fluent.Enabled {
		return slog.New(console), noop, nil
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: opts.Fluent.Host,
		FluentPort: opts.Fluent.Port,
		Async:      true,
	})
	if err != nil {
		return slog.New(console), noop, fmt.Errorf("error connecting to fluent: %w", err)
	}

	fluentHandler := NewFluentHandler(client, opts.Fluent.Tag, ParseLevel(opts.Fluent.Level))
	return slog.New(NewFanoutHandler(console, fluentHandler)), client.Close, nil
}
