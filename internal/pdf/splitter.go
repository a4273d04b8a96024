package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dmayle/carry/internal/shared"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// Range is an inclusive 1-based page range.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ChunkRanges cuts totalPages into perChunk-sized ranges: totalPages/perChunk
// full chunks plus one remainder chunk when the division is not exact.
func ChunkRanges(totalPages, perChunk int) []Range {
	ranges := []Range{}
	for start := 1; start <= totalPages; start += perChunk {
		end := start + perChunk - 1
		if end > totalPages {
			end = totalPages
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}

// Option configures the splitter.
type Option func(*Splitter)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(s *Splitter) {
		if exec != nil {
			s.exec = exec
		}
	}
}

// Splitter wraps the external PDF tools.
type Splitter struct {
	infoBin    string
	extractBin string
	psBin      string
	exec       Executor
	logger     *log.Logger
}

// NewSplitter constructs a splitter using the configured tool binaries.
func NewSplitter(tools shared.ToolsConfig, logger *log.Logger, opts ...Option) *Splitter {
	s := &Splitter{
		infoBin:    tools.PDFInfo,
		extractBin: tools.PDFExtract,
		psBin:      tools.PDFToPS,
		exec:       commandExecutor{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PageCount queries the page count of a PDF via the info tool, parsing the
// "Pages: N" line from its output.
func (s *Splitter) PageCount(ctx context.Context, path string) (int, error) {
	pages := 0
	found := false
	err := s.exec.Run(ctx, s.infoBin, []string{path}, func(line string) {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "Pages:" {
			if n, convErr := strconv.Atoi(fields[1]); convErr == nil {
				pages = n
				found = true
			}
		}
	})
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return 0, fmt.Errorf("%w: %s", shared.ErrToolNotFound, s.infoBin)
		}
		return 0, fmt.Errorf("failed to query page count: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: no page count in %s output for %s", shared.ErrInvalidInput, s.infoBin, path)
	}
	return pages, nil
}

// Result tallies a split run.
type Result struct {
	Chunks  int
	Written int
	Failed  []string
}

// Split extracts every chunk of input into targetDir as
// <stem>_<0000-padded index>.pdf, or .ps when toPS is set. A chunk whose
// expected output never appears is recorded in the result and skipped.
func (s *Splitter) Split(ctx context.Context, input string, perChunk int, targetDir string, toPS bool) (*Result, error) {
	total, err := s.PageCount(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	ranges := ChunkRanges(total, perChunk)
	result := &Result{Chunks: len(ranges)}

	s.logger.Info("splitting", "input", input, "pages", total, "chunks", len(ranges))

	for i, r := range ranges {
		out := filepath.Join(targetDir, fmt.Sprintf("%s_%04d.pdf", stem, i))
		if err := s.extractChunk(ctx, input, r, out); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			s.logger.Error("chunk failed", "range", r.String(), "err", err)
			result.Failed = append(result.Failed, out)
			continue
		}
		if toPS {
			psOut := filepath.Join(targetDir, fmt.Sprintf("%s_%04d.ps", stem, i))
			if err := s.convertPS(ctx, out, psOut); err != nil {
				if ctx.Err() != nil {
					return result, ctx.Err()
				}
				s.logger.Error("postscript conversion failed", "chunk", out, "err", err)
				result.Failed = append(result.Failed, psOut)
				continue
			}
			// The intermediate PDF chunk is only scaffolding for the
			// PostScript output.
			os.Remove(out)
		}
		result.Written++
	}
	return result, nil
}

func (s *Splitter) extractChunk(ctx context.Context, input string, r Range, out string) error {
	args := []string{input, "--pages", ".", r.String(), "--", out}
	if err := s.exec.Run(ctx, s.extractBin, args, nil); err != nil {
		s.logger.Debug("extract tool exit", "binary", s.extractBin, "err", err)
	}
	if _, err := os.Stat(out); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrOutputMissing, out)
	}
	return nil
}

func (s *Splitter) convertPS(ctx context.Context, in, out string) error {
	if err := s.exec.Run(ctx, s.psBin, []string{in, out}, nil); err != nil {
		s.logger.Debug("postscript tool exit", "binary", s.psBin, "err", err)
	}
	if _, err := os.Stat(out); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrOutputMissing, out)
	}
	return nil
}
