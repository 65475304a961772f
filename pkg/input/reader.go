package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/lifecycle"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// LineReader yields one line of text at a time.
type LineReader interface {
	// ReadLine blocks until a line is available, ctx is done, or the input ends.
	// The returned line has its line terminator removed.
	ReadLine(ctx context.Context) (string, error)
}

type streamReader struct {
	lines chan string
	err   error
}

// NewLineReader starts reading r line by line in the background.
//
// The pump goroutine lives until r is exhausted or ctx is done. ReadLine
// only waits on a channel, so a caller can abandon a pending read by
// cancelling its own context even while the underlying Read is blocked.
func NewLineReader(ctx context.Context, r io.Reader, opts ...ReaderOption) LineReader {
	o := readerOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	sr := &streamReader{lines: make(chan string)}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(sr.lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				select {
				case sr.lines <- trimEOL(line):
				case <-ctx.Done():
					return nil
				}
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				sr.err = err
				return err
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		o.logger.Error("line reader stopped", "error", err)
	}))

	return sr
}

// trimEOL drops a trailing "\n" or "\r\n". Lines have no length limit.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func (sr *streamReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-sr.lines:
		if !ok {
			if sr.err != nil {
				return "", fmt.Errorf("%w: %v", ErrInputClosed, sr.err)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

// ReaderOption configures NewLineReader.
type ReaderOption func(*readerOptions)

type readerOptions struct {
	logger *slog.Logger
}

// WithReaderLogger sets the logger used for read failures.
func WithReaderLogger(logger *slog.Logger) ReaderOption {
	return func(o *readerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
