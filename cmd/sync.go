package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmayle/carry/internal/library"
	"github.com/dmayle/carry/internal/shared"
	"github.com/dmayle/carry/internal/tasks"
	"github.com/dmayle/carry/internal/transcode"
	"github.com/dmayle/carry/internal/ui"
)

// Sync copies/transcodes the spec'd selection of the music library onto the
// target device.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	r.applyDebug(cmd)

	specFile := cmd.StringArg("spec")
	targetDir := cmd.StringArg("target")
	if specFile == "" || targetDir == "" {
		return fmt.Errorf("%w: usage: %s", shared.ErrMissingArgument, cmd.UsageText)
	}

	config := r.configFor(cmd)

	lines, err := library.ReadSpecFile(specFile)
	if err != nil {
		return err
	}
	patterns := library.ParseSpecLines(lines, r.logger)
	if len(patterns) == 0 {
		return r.writePlainln("Specification is empty; nothing to do.")
	}

	allowed, err := r.allowedFormats(cmd)
	if err != nil {
		return err
	}
	r.logger.Info("allowed formats", "formats", strings.Join(allowed.Names(), " "))

	// Build and check the conversion table before touching the target.
	rules, err := transcode.BuildRules(config.Quality)
	if err != nil {
		return err
	}
	if err := rules.Validate(); err != nil {
		return err
	}

	decisions, err := r.gatherDecisions(cmd, targetDir)
	if err != nil {
		return err
	}

	overwrite, err := library.PrepareTarget(targetDir, decisions, r.logger)
	if err != nil {
		return err
	}

	jobs, err := library.BuildJobSet(config.Library.Root, patterns, allowed, targetDir, r.logger)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return r.writePlainln("No files matched the specification; nothing to do.")
	}

	jobs = library.FilterAgainstTarget(jobs, overwrite)
	if len(jobs) == 0 {
		return r.writePlainln("All destinations already exist; nothing left to do.")
	}

	r.writePlain("%s", ui.RenderJobs(jobs))

	if !decisions.Proceed {
		proceed, err := r.prompter.Confirm(fmt.Sprintf("Transfer %d files to %s?", len(jobs), targetDir))
		if err != nil {
			return err
		}
		if !proceed {
			return r.writePlainln("Nothing transferred.")
		}
	}

	workers := config.Sync.Workers
	if n := cmd.Int("workers"); n > 0 {
		workers = n
	}

	transcoder := transcode.NewTranscoder(config.Tools.FFmpeg, rules, r.logger)
	engine := tasks.NewSyncEngine(config.Library.Root, targetDir, transcoder, workers, r.logger)

	progress := make(chan tasks.ProgressUpdate, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String(), "step", update.Step, "total", update.Total)
		}
	}()

	result, runErr := engine.Run(ctx, progress, jobs)
	close(progress)
	<-done
	if runErr != nil {
		return runErr
	}

	if len(result.Failed) > 0 {
		r.writePlainln("%s", ui.Warnf("%d files failed:", len(result.Failed)))
		for _, name := range result.Failed {
			r.writePlain("  %s\n", name)
		}
	}
	return r.writePlainln("%s", ui.Okf("Transferred %d files (%d copied, %d converted) to %s",
		result.Copied+result.Converted, result.Copied, result.Converted, targetDir))
}

// allowedFormats resolves the allowed-format set from the --formats flag or,
// interactively, from a prompt. An empty selection is fatal.
func (r *Runner) allowedFormats(cmd *cli.Command) (library.AllowedSet, error) {
	var tokens []string
	if flag := cmd.String("formats"); flag != "" {
		tokens = splitTokens(flag)
	} else {
		supported := []string{}
		for _, f := range library.AllFormats {
			supported = append(supported, string(f))
		}
		answer, err := r.prompter.Ask("Formats the device can play", strings.Join(supported, " "))
		if err != nil {
			return nil, err
		}
		tokens = strings.Fields(answer)
	}
	return library.ParseAllowed(tokens)
}

// gatherDecisions asks the clean/overwrite questions that apply to the
// current target state, unless the corresponding flags already answered them.
func (r *Runner) gatherDecisions(cmd *cli.Command, targetDir string) (library.Decisions, error) {
	decisions := library.Decisions{
		Clean:     cmd.Bool("clean"),
		Overwrite: cmd.Bool("overwrite"),
		Proceed:   cmd.Bool("yes"),
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil || len(entries) == 0 {
		// Missing or empty target: nothing to clean or overwrite.
		return decisions, nil
	}

	if !decisions.Clean && !cmd.IsSet("clean") {
		clean, err := r.prompter.Confirm(fmt.Sprintf("Target %s is not empty. Clean it first?", targetDir))
		if err != nil {
			return decisions, err
		}
		decisions.Clean = clean
	}

	if !decisions.Clean && !decisions.Overwrite && !cmd.IsSet("overwrite") {
		overwrite, err := r.prompter.Confirm("Overwrite files that already exist on the target?")
		if err != nil {
			return decisions, err
		}
		decisions.Overwrite = overwrite
	}

	return decisions, nil
}
