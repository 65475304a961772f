package libcat

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/libcat/internal/config"
	"github.com/aretw0/libcat/internal/console"
	"github.com/aretw0/libcat/internal/platform"
	"github.com/aretw0/libcat/pkg/catalog"
	"github.com/aretw0/libcat/pkg/core"
)

// --- Types ---

// Item is a public alias for a catalog entry.
type Item[C comparable] = core.Item[C]

// Catalog is a public alias for the in-memory store.
type Catalog[C comparable] = catalog.Catalog[C]

// Date is a public alias for a calendar date.
type Date = core.Date

// Session is a public alias for the interactive console session.
type Session = console.Session

// Config is a public alias for the session settings.
type Config = config.Config

// --- Store ---

// NewCatalog creates an empty catalog grouped by categories of type C.
func NewCatalog[C comparable]() *catalog.Catalog[C] {
	return catalog.New[C]()
}

// NewItem creates an item with a generated ID and today's date as DateAdded.
func NewItem[C comparable](title, author string, category C, releaseDate Date) Item[C] {
	return core.NewItem(title, author, category, releaseDate)
}

// --- Configuration ---

// Option defines a functional option for configuring a session.
type Option = platform.Option

// WithInput sets where user input is read from.
func WithInput(r io.Reader) Option {
	return platform.WithInput(r)
}

// WithOutput sets where prompts and listings are written.
func WithOutput(w io.Writer) Option {
	return platform.WithOutput(w)
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithConfig replaces the default settings.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithClock sets the source of today's date.
func WithClock(today func() Date) Option {
	return platform.WithClock(today)
}

// LoadConfig reads a YAML config file; an empty path searches for libcat.yaml.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// --- Factory ---

// NewSession creates an interactive session over a new, empty catalog.
func NewSession(ctx context.Context, opts ...Option) (*Session, error) {
	return platform.New(ctx, opts...)
}
