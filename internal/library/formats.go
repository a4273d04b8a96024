package library

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmayle/carry/internal/shared"
)

// Format identifies a supported audio encoding.
type Format string

const (
	FormatFLAC Format = "flac"
	FormatOGG  Format = "ogg"
	FormatMP3  Format = "mp3"
)

// AllFormats lists every supported format in descending quality order.
// The order is fixed and total; it decides which allowed format counts as
// "best" when a conversion destination has to be picked.
var AllFormats = []Format{FormatFLAC, FormatOGG, FormatMP3}

// Ext returns the file extension for the format, including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat parses a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range AllFormats {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidInput, s)
}

// FormatFromPath derives the format of a file from its extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseFormat(ext)
}

// AllowedSet is the user-chosen subset of formats acceptable on the target
// device.
type AllowedSet map[Format]bool

// ParseAllowed builds an [AllowedSet] from user input tokens, silently
// dropping tokens that are not a supported format. An empty result is a
// configuration error; the caller must not start any work with it.
func ParseAllowed(tokens []string) (AllowedSet, error) {
	allowed := AllowedSet{}
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if f, err := ParseFormat(tok); err == nil {
			allowed[f] = true
		}
	}
	if len(allowed) == 0 {
		return nil, shared.ErrNoFormats
	}
	return allowed, nil
}

// Best returns the highest-quality member of the set by the fixed quality
// order. The set is never empty once parsed.
func (a AllowedSet) Best() Format {
	for _, f := range AllFormats {
		if a[f] {
			return f
		}
	}
	return AllFormats[len(AllFormats)-1]
}

// Names returns the members of the set in quality order, for display.
func (a AllowedSet) Names() []string {
	names := []string{}
	for _, f := range AllFormats {
		if a[f] {
			names = append(names, string(f))
		}
	}
	return names
}
