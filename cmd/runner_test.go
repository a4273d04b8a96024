package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/dmayle/carry/internal/shared"
	tu "github.com/dmayle/carry/internal/testing"
)

func testApp(r *Runner) *cli.Command {
	return &cli.Command{Name: "carry", Commands: r.register()}
}

func seedLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range []string{
		"Stones/Dirty Work/01.flac",
		"Stones/Dirty Work/02.mp3",
		"Beatles/Abbey Road/01.ogg",
	} {
		tu.WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), "audio "+rel)
	}
	return root
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			prompter := &tu.MockPrompter{}

			runner := NewRunner(RunnerOpts{
				Config:   config,
				Logger:   logger,
				Output:   output,
				Prompter: prompter,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.prompter != prompter {
				t.Error("expected prompter to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})
	})

	t.Run("splitTokens", func(t *testing.T) {
		got := splitTokens("mp3, ogg  flac")
		if len(got) != 3 || got[0] != "mp3" || got[1] != "ogg" || got[2] != "flac" {
			t.Errorf("unexpected tokens: %v", got)
		}
	})
}

func TestPDFSplitValidation(t *testing.T) {
	newRunner := func() *Runner {
		return NewRunner(RunnerOpts{
			Logger: shared.NewLogger(&bytes.Buffer{}),
			Output: &bytes.Buffer{},
		})
	}

	t.Run("missing arguments", func(t *testing.T) {
		err := testApp(newRunner()).Run(context.Background(), []string{"carry", "pdfsplit", "doc.pdf"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("non-numeric chunk size", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "doc.pdf")
		tu.WriteFile(t, input, "%PDF")
		err := testApp(newRunner()).Run(context.Background(), []string{"carry", "pdfsplit", input, "five", t.TempDir()})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.pdf")
		err := testApp(newRunner()).Run(context.Background(), []string{"carry", "pdfsplit", missing, "5", t.TempDir()})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("unknown output format", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "doc.pdf")
		tu.WriteFile(t, input, "%PDF")
		err := testApp(newRunner()).Run(context.Background(), []string{"carry", "pdfsplit", input, "5", t.TempDir(), "docx"})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestSync(t *testing.T) {
	newRunner := func(root string, prompter *tu.MockPrompter, output *bytes.Buffer) *Runner {
		config := shared.DefaultConfig()
		config.Library.Root = root
		if prompter == nil {
			prompter = &tu.MockPrompter{}
		}
		return NewRunner(RunnerOpts{
			Config:   config,
			Logger:   shared.NewLogger(&bytes.Buffer{}),
			Output:   output,
			Prompter: prompter,
		})
	}

	t.Run("missing arguments", func(t *testing.T) {
		r := newRunner(t.TempDir(), nil, &bytes.Buffer{})
		err := testApp(r).Run(context.Background(), []string{"carry", "sync", "spec.txt"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("empty format selection is fatal", func(t *testing.T) {
		root := seedLibrary(t)
		spec := filepath.Join(t.TempDir(), "spec.txt")
		tu.WriteFile(t, spec, "Stones\n")

		r := newRunner(root, nil, &bytes.Buffer{})
		err := testApp(r).Run(context.Background(), []string{"carry", "sync", "--formats", "wav", spec, t.TempDir()})
		if !errors.Is(err, shared.ErrNoFormats) {
			t.Errorf("expected ErrNoFormats, got %v", err)
		}
	})

	t.Run("copies everything when all formats are allowed", func(t *testing.T) {
		root := seedLibrary(t)
		target := filepath.Join(t.TempDir(), "player")
		spec := filepath.Join(t.TempDir(), "spec.txt")
		tu.WriteFile(t, spec, "Stones\nBeatles\n")

		output := &bytes.Buffer{}
		r := newRunner(root, nil, output)
		err := testApp(r).Run(context.Background(), []string{
			"carry", "sync", "--formats", "flac,ogg,mp3", "--yes", spec, target,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, rel := range []string{
			"Stones/Dirty Work/01.flac",
			"Stones/Dirty Work/02.mp3",
			"Beatles/Abbey Road/01.ogg",
		} {
			if !tu.Exists(filepath.Join(target, filepath.FromSlash(rel))) {
				t.Errorf("missing file on target: %s", rel)
			}
		}
		if !strings.Contains(output.String(), "3 copied") {
			t.Errorf("unexpected output: %s", output.String())
		}
	})

	t.Run("prompts drive formats and confirmation", func(t *testing.T) {
		root := seedLibrary(t)
		target := filepath.Join(t.TempDir(), "player")
		spec := filepath.Join(t.TempDir(), "spec.txt")
		tu.WriteFile(t, spec, "Stones/Dirty/02\n")

		prompter := &tu.MockPrompter{Answers: []string{"mp3"}, Confirms: []bool{true}}
		r := newRunner(root, prompter, &bytes.Buffer{})
		err := testApp(r).Run(context.Background(), []string{"carry", "sync", spec, target})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tu.Exists(filepath.Join(target, filepath.FromSlash("Stones/Dirty Work/02.mp3"))) {
			t.Error("expected the mp3 to be copied")
		}
	})

	t.Run("declined confirmation transfers nothing", func(t *testing.T) {
		root := seedLibrary(t)
		target := filepath.Join(t.TempDir(), "player")
		spec := filepath.Join(t.TempDir(), "spec.txt")
		tu.WriteFile(t, spec, "Stones/Dirty/02\n")

		prompter := &tu.MockPrompter{Answers: []string{"mp3"}, Confirms: []bool{false}}
		output := &bytes.Buffer{}
		r := newRunner(root, prompter, output)
		err := testApp(r).Run(context.Background(), []string{"carry", "sync", spec, target})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tu.Exists(filepath.Join(target, filepath.FromSlash("Stones/Dirty Work/02.mp3"))) {
			t.Error("nothing should have been transferred")
		}
	})

	t.Run("rerun with existing destinations has nothing to do", func(t *testing.T) {
		root := seedLibrary(t)
		target := filepath.Join(t.TempDir(), "player")
		spec := filepath.Join(t.TempDir(), "spec.txt")
		tu.WriteFile(t, spec, "Stones/Dirty/02\n")

		first := []string{"carry", "sync", "--formats", "mp3", "--yes", spec, target}
		r := newRunner(root, nil, &bytes.Buffer{})
		if err := testApp(r).Run(context.Background(), first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := &bytes.Buffer{}
		r = newRunner(root, &tu.MockPrompter{Confirms: []bool{false, false}}, output)
		if err := testApp(r).Run(context.Background(), first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.String(), "nothing left to do") {
			t.Errorf("unexpected output: %s", output.String())
		}
	})
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	output := &bytes.Buffer{}
	r := NewRunner(RunnerOpts{Logger: shared.NewLogger(&bytes.Buffer{}), Output: output})

	err := testApp(r).Run(context.Background(), []string{"carry", "config", "init", "--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tu.Exists(path) {
		t.Error("config file not written")
	}
	if _, err := shared.LoadConfig(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}
