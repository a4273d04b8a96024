package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/dmayle/carry/internal/pdf"
	"github.com/dmayle/carry/internal/shared"
	"github.com/dmayle/carry/internal/ui"
)

// PDFSplit splits the input PDF into fixed-size page-range chunks
func (r *Runner) PDFSplit(ctx context.Context, cmd *cli.Command) error {
	r.applyDebug(cmd)

	input := cmd.StringArg("input")
	pagesArg := cmd.StringArg("pages")
	target := cmd.StringArg("target")
	format := cmd.StringArg("format")

	if input == "" || pagesArg == "" || target == "" {
		return fmt.Errorf("%w: usage: %s", shared.ErrMissingArgument, cmd.UsageText)
	}

	perChunk, err := strconv.Atoi(pagesArg)
	if err != nil || perChunk < 1 {
		return fmt.Errorf("%w: pagesPerChunk must be a positive integer, got %q", shared.ErrInvalidArgument, pagesArg)
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("%w: cannot read input %s: %v", shared.ErrInvalidArgument, input, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: input %s is a directory", shared.ErrInvalidArgument, input)
	}

	toPS := false
	switch format {
	case "":
	case "ps":
		toPS = true
	default:
		return fmt.Errorf("%w: unknown output format %q (only \"ps\")", shared.ErrInvalidArgument, format)
	}

	config := r.configFor(cmd)
	splitter := pdf.NewSplitter(config.Tools, r.logger)

	result, err := splitter.Split(ctx, input, perChunk, target, toPS)
	if err != nil {
		return err
	}

	if len(result.Failed) > 0 {
		r.writePlainln("%s", ui.Errf("%d of %d chunks failed:", len(result.Failed), result.Chunks))
		for _, name := range result.Failed {
			r.writePlain("  %s\n", name)
		}
	}
	return r.writePlainln("%s", ui.Okf("Wrote %d of %d chunks to %s", result.Written, result.Chunks, target))
}
