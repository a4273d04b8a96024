// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// pdfsplitCommand splits a PDF into fixed-size page-range chunks
func pdfsplitCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "pdfsplit",
		Usage:     "Split a PDF into fixed-size page-range chunks",
		UsageText: "carry pdfsplit <input.pdf> <pagesPerChunk> <targetDir> [ps]",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "input"},
			&cli.StringArg{Name: "pages"},
			&cli.StringArg{Name: "target"},
			&cli.StringArg{Name: "format"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: r.PDFSplit,
	}
}

// syncCommand copies or transcodes a music selection onto a target device
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Aliases:   []string{"music2thumb", "m2t"},
		Usage:     "Copy/transcode a music selection onto a target device",
		UsageText: "carry sync <specFile> <targetDir>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "spec"},
			&cli.StringArg{Name: "target"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "formats",
				Aliases: []string{"f"},
				Usage:   "Allowed formats on the device (space or comma separated), skips the prompt",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Parallel transcodes (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "clean",
				Usage: "Clean a non-empty target directory without asking",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "Overwrite existing destination files without asking",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the final confirmation",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: r.Sync,
	}
}

// configCommand handles configuration file management
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a default config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
