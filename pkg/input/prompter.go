package input

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Prompter runs the prompt, read, check loop against a LineReader.
type Prompter struct {
	in     LineReader
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithLogger sets the logger that receives rejected attempts at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in LineReader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:     in,
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validated prompts until validate accepts a line and returns that line unchanged.
// On rejection errorMessage is printed and the prompt repeats.
func (p *Prompter) Validated(ctx context.Context, prompt string, validate func(string) bool, errorMessage string) (string, error) {
	for attempt := 1; ; attempt++ {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if validate(line) {
			return line, nil
		}
		p.logger.Debug("input rejected", "prompt", prompt, "attempt", attempt)
		if err := p.say(errorMessage); err != nil {
			return "", err
		}
	}
}

// Parsed prompts until parse succeeds and returns the parsed value.
//
// Whatever makes parse fail (an error or a panic) is reported to the user as
// errorMessage only; the cause goes to the debug log.
func Parsed[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error), errorMessage string) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		line, err := p.ask(ctx, prompt)
		if err != nil {
			return zero, err
		}
		v, err := safeParse(parse, line)
		if err == nil {
			return v, nil
		}
		p.logger.Debug("input rejected", "prompt", prompt, "attempt", attempt, "error", err)
		if err := p.say(errorMessage); err != nil {
			return zero, err
		}
	}
}

// Say writes a line of text to the prompter's output.
func (p *Prompter) Say(format string, args ...any) error {
	return p.say(fmt.Sprintf(format, args...))
}

func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := p.say(prompt); err != nil {
		return "", err
	}
	return p.in.ReadLine(ctx)
}

func (p *Prompter) say(msg string) error {
	if _, err := fmt.Fprintln(p.out, msg); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

func safeParse[T any](parse func(string) (T, error), line string) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return parse(line)
}
