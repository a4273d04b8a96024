package tasks

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/dmayle/carry/internal/library"
	"github.com/dmayle/carry/internal/shared"
)

// Converter transcodes a single source file into dst.
// Implemented by [transcode.Transcoder].
type Converter interface {
	Convert(ctx context.Context, src, dst string, conv library.Conversion) error
}

// Result tallies a sync run. Failed holds source paths, so every missing
// output is reported by name.
type Result struct {
	Copied    int
	Converted int
	Failed    []string
}

// SyncEngine moves a resolved job set onto the target device.
type SyncEngine struct {
	libraryRoot string
	targetRoot  string
	converter   Converter
	workers     int
	logger      *log.Logger
}

// NewSyncEngine creates an engine rooted at the given library and target
// directories. workers bounds concurrent conversions and defaults to 1.
func NewSyncEngine(libraryRoot, targetRoot string, converter Converter, workers int, logger *log.Logger) *SyncEngine {
	if workers < 1 {
		workers = 1
	}
	return &SyncEngine{
		libraryRoot: libraryRoot,
		targetRoot:  targetRoot,
		converter:   converter,
		workers:     workers,
		logger:      logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *SyncEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Run executes every job: plain copies first, sequentially, then conversions
// on the worker pool. Per-job failures are recorded and skipped; only a
// cancelled context or an unusable staging directory aborts the run.
func (e *SyncEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, jobs map[string]library.Job) (*Result, error) {
	result := &Result{}
	if len(jobs) == 0 {
		return result, nil
	}

	e.sendProgress(progress, ProgressUpdate{Phase: PrepareStaging, Message: "Preparing staging directory"})

	// Staging lives under the target root so the final rename stays on one
	// filesystem and is atomic.
	staging := filepath.Join(e.targetRoot, ".carry-staging-"+shared.GenerateID())
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	copies, conversions := partition(jobs)

	for i, job := range copies {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		e.sendProgress(progress, copyUpdate(i+1, len(copies), job.Source))
		if err := e.runCopy(job, staging); err != nil {
			e.logger.Error("copy failed", "source", job.Source, "err", err)
			result.Failed = append(result.Failed, job.Source)
			continue
		}
		result.Copied++
	}

	var mu sync.Mutex
	step := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, job := range conversions {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			mu.Lock()
			step++
			e.sendProgress(progress, convertUpdate(step, len(conversions), job.Source))
			mu.Unlock()

			if err := e.runConversion(gctx, job, staging); err != nil {
				if gctx.Err() != nil {
					return err
				}
				e.logger.Error("conversion failed", "source", job.Source, "err", err)
				mu.Lock()
				result.Failed = append(result.Failed, job.Source)
				mu.Unlock()
				return nil
			}
			mu.Lock()
			result.Converted++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	e.sendProgress(progress, finishUpdate(result.Copied, result.Converted, len(result.Failed)))
	sort.Strings(result.Failed)
	return result, nil
}

// partition splits the job map into copy and conversion jobs, each sorted by
// source path for stable execution and reporting order.
func partition(jobs map[string]library.Job) (copies, conversions []library.Job) {
	sources := make([]string, 0, len(jobs))
	for src := range jobs {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	for _, src := range sources {
		job := jobs[src]
		if job.Conversion == nil {
			copies = append(copies, job)
		} else {
			conversions = append(conversions, job)
		}
	}
	return copies, conversions
}

func (e *SyncEngine) runCopy(job library.Job, staging string) error {
	tmp := filepath.Join(staging, shared.GenerateID()+filepath.Ext(job.Dest))
	if err := copyFile(filepath.Join(e.libraryRoot, job.Source), tmp); err != nil {
		return err
	}
	return finalize(tmp, job.Dest)
}

func (e *SyncEngine) runConversion(ctx context.Context, job library.Job, staging string) error {
	tmp := filepath.Join(staging, shared.GenerateID()+filepath.Ext(job.Dest))
	src := filepath.Join(e.libraryRoot, job.Source)
	if err := e.converter.Convert(ctx, src, tmp, *job.Conversion); err != nil {
		os.Remove(tmp)
		return err
	}
	return finalize(tmp, job.Dest)
}

// finalize relocates a finished staging file into the target tree. The
// rename only happens after the output is fully written, so an abort at any
// earlier point leaves nothing behind in the target.
func finalize(tmp, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("failed to move into place: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy: %w", err)
	}
	return out.Close()
}
