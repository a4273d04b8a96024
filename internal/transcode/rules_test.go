package transcode

import (
	"errors"
	"testing"

	"github.com/dmayle/carry/internal/library"
	"github.com/dmayle/carry/internal/shared"
)

var testQuality = map[string][]string{
	"flac": {"-codec:a", "flac"},
	"ogg":  {"-codec:a", "libvorbis", "-qscale:a", "6"},
	"mp3":  {"-codec:a", "libmp3lame", "-qscale:a", "2"},
}

func TestBuildRules(t *testing.T) {
	t.Run("covers every producible pair", func(t *testing.T) {
		rules, err := BuildRules(testQuality)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rules.Validate(); err != nil {
			t.Fatalf("validation failed: %v", err)
		}
		if len(rules) != 6 {
			t.Errorf("expected 6 rules, got %d", len(rules))
		}
		conv := library.Conversion{From: library.FormatFLAC, To: library.FormatMP3}
		if flags := rules[conv]; len(flags) == 0 || flags[1] != "libmp3lame" {
			t.Errorf("unexpected flags for %s: %v", conv, flags)
		}
	})

	t.Run("missing destination flags are a configuration error", func(t *testing.T) {
		partial := map[string][]string{
			"flac": {"-codec:a", "flac"},
			"mp3":  {"-codec:a", "libmp3lame"},
		}
		if _, err := BuildRules(partial); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects an incomplete table", func(t *testing.T) {
		rules, err := BuildRules(testQuality)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		delete(rules, library.Conversion{From: library.FormatOGG, To: library.FormatMP3})
		if err := rules.Validate(); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
