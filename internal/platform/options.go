package platform

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/libcat/internal/config"
	"github.com/aretw0/libcat/pkg/core"
)

// options holds the internal configuration for a libcat session.
type options struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	config config.Config
	today  func() core.Date
}

// Option defines a functional option for configuring a session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		in:     os.Stdin,
		out:    os.Stdout,
		logger: nil,
		config: config.Default(),
		today:  core.Today,
	}
}

// WithInput sets where user input is read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.in = r
	}
}

// WithOutput sets where prompts and listings are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig replaces the default settings (date layout, output format).
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithClock sets the source of today's date, used as the added date of new items.
func WithClock(today func() core.Date) Option {
	return func(o *options) {
		o.today = today
	}
}
