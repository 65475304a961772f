package platform

import (
	"context"
	"log/slog"

	"github.com/aretw0/libcat/internal/config"
	"github.com/aretw0/libcat/internal/console"
	"github.com/aretw0/libcat/internal/render"
	"github.com/aretw0/libcat/pkg/catalog"
	"github.com/aretw0/libcat/pkg/input"
)

// New wires an empty catalog, the input pipeline and a renderer into a console session.
//
// ctx bounds the background line reader; cancel it once the session is over.
func New(ctx context.Context, opts ...Option) (*console.Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	renderer, err := render.ForFormat[string](o.config.Format, o.config.DateLayout)
	if err != nil {
		return nil, err
	}

	hint := o.config.DateHint
	if hint == "" {
		hint = config.HintFor(o.config.DateLayout)
	}

	reader := input.NewLineReader(ctx, o.in, input.WithReaderLogger(logger))
	prompter := input.NewPrompter(reader, o.out, input.WithLogger(logger))

	return console.NewSession(catalog.New[string](), prompter, o.out,
		console.WithRenderer(renderer),
		console.WithDateLayout(o.config.DateLayout, hint),
		console.WithClock(o.today),
		console.WithLogger(logger),
	), nil
}
