package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmayle/carry/internal/shared"
	"github.com/dmayle/carry/internal/ui"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Logger:   logger,
		Prompter: ui.TerminalPrompter{},
	})

	app := &cli.Command{
		Name:     "carry",
		Usage:    "Split PDFs into page-range chunks & carry music onto small devices",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrAborted) {
			logger.Warn("aborted")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
