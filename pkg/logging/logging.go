// Package logging configures the structured logger shared by every planner
// command. Logs go to stderr so command output stays clean.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// FieldComponent is the attribute naming the part of the planner that logged.
const FieldComponent = "component"

// Component names used across the planner.
const (
	ComponentStore     = "store"
	ComponentPersist   = "persist"
	ComponentTasks     = "tasks"
	ComponentFinance   = "finance"
	ComponentJournal   = "journal"
	ComponentActivity  = "activities"
	ComponentWatch     = "watchlist"
	ComponentOutings   = "outings"
	ComponentRoutines  = "routines"
	ComponentSelfLove  = "selflove"
	ComponentSport     = "sport"
	ComponentProfile   = "profile"
	ComponentDialog    = "dialog"
	ComponentDataURL   = "dataurl"
	ComponentShare     = "share"
	ComponentCLI       = "cli"
	ComponentDashboard = "dashboard"
	ComponentTransfer  = "transfer"
)

// Formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logger configuration.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// DefaultConfig logs info and above as text to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatText, Writer: os.Stderr}
}

// New builds a logger for cfg.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	return slog.New(handler), nil
}

// ParseLevel accepts debug, info, warn and error in any case. Empty is info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
	return level, nil
}

// SetDefault installs logger as the process default.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// For returns the default logger scoped to component.
func For(component string) *slog.Logger {
	return WithComponent(slog.Default(), component)
}

// WithComponent scopes logger to component. A nil logger means the default.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(FieldComponent, component)
}

// Discard is a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
