package library

import (
	"errors"
	"testing"

	"github.com/dmayle/carry/internal/shared"
)

func TestFormats(t *testing.T) {
	t.Run("FormatFromPath", func(t *testing.T) {
		tests := []struct {
			path    string
			want    Format
			wantErr bool
		}{
			{"Stones/Dirty Work/01.flac", FormatFLAC, false},
			{"a/b/c.ogg", FormatOGG, false},
			{"a/b/c.mp3", FormatMP3, false},
			{"a/b/c.wav", "", true},
			{"a/b/noext", "", true},
		}
		for _, tt := range tests {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("%q: expected error", tt.path)
				}
				continue
			}
			if err != nil {
				t.Errorf("%q: unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("%q: got %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("ParseAllowed filters unsupported tokens", func(t *testing.T) {
		allowed, err := ParseAllowed([]string{"mp3", "wav", "", "ogg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed[FormatMP3] || !allowed[FormatOGG] || allowed[FormatFLAC] {
			t.Errorf("unexpected set: %v", allowed)
		}
	})

	t.Run("empty selection is a configuration error", func(t *testing.T) {
		if _, err := ParseAllowed([]string{"wav", ""}); !errors.Is(err, shared.ErrNoFormats) {
			t.Errorf("expected ErrNoFormats, got %v", err)
		}
		if _, err := ParseAllowed(nil); !errors.Is(err, shared.ErrNoFormats) {
			t.Errorf("expected ErrNoFormats, got %v", err)
		}
	})

	t.Run("Best follows the fixed quality order", func(t *testing.T) {
		tests := []struct {
			allowed AllowedSet
			want    Format
		}{
			{AllowedSet{FormatMP3: true}, FormatMP3},
			{AllowedSet{FormatMP3: true, FormatOGG: true}, FormatOGG},
			{AllowedSet{FormatMP3: true, FormatFLAC: true}, FormatFLAC},
			{AllowedSet{FormatFLAC: true, FormatOGG: true, FormatMP3: true}, FormatFLAC},
		}
		for _, tt := range tests {
			if got := tt.allowed.Best(); got != tt.want {
				t.Errorf("%v: got %v, want %v", tt.allowed, got, tt.want)
			}
		}
	})
}
