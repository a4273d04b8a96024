package transcode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/dmayle/carry/internal/library"
	"github.com/dmayle/carry/internal/shared"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// Option configures the transcoder.
type Option func(*Transcoder)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(t *Transcoder) {
		if exec != nil {
			t.exec = exec
		}
	}
}

// Transcoder runs the external encoder for a fixed rule table.
type Transcoder struct {
	binary string
	rules  Rules
	exec   Executor
	logger *log.Logger
}

// NewTranscoder constructs a transcoder. The rules must already be validated.
func NewTranscoder(binary string, rules Rules, logger *log.Logger, opts ...Option) *Transcoder {
	t := &Transcoder{
		binary: binary,
		rules:  rules,
		exec:   commandExecutor{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Convert transcodes src into dst according to the conversion's rule.
//
// The encoder's exit status is logged but ignored; external encoders have
// been observed exiting zero after producing nothing and non-zero after
// producing a usable file. The output file's existence is the only success
// signal.
func (t *Transcoder) Convert(ctx context.Context, src, dst string, conv library.Conversion) error {
	flags, ok := t.rules[conv]
	if !ok {
		return fmt.Errorf("%w: no conversion rule for %s", shared.ErrInvalidConfig, conv)
	}

	args := []string{"-y", "-i", src}
	args = append(args, flags...)
	args = append(args, dst)

	if err := t.exec.Run(ctx, t.binary, args, nil); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrToolNotFound, t.binary)
		}
		t.logger.Debug("encoder exit", "binary", t.binary, "err", err)
	}

	if _, err := os.Stat(dst); err != nil {
		return fmt.Errorf("%w: %s (%s)", shared.ErrOutputMissing, src, conv)
	}
	return nil
}
