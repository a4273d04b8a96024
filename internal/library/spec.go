package library

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Pattern is a specification line expanded to exactly three glob components:
// artist, album and track. Each component is either "*" (match anything) or
// "*<literal>*" (substring match), with glob metacharacters in the literal
// escaped.
type Pattern struct {
	Artist string
	Album  string
	Track  string
}

func (p Pattern) String() string {
	return p.Artist + "/" + p.Album + "/" + p.Track
}

// ReadSpecFile reads a specification file: one line per spec, UTF-8,
// surrounding whitespace trimmed, blank lines dropped.
func ReadSpecFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	lines := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ParseSpecLines turns raw specification lines into glob patterns.
//
// Each line is split on "/". Lines with more than three components are
// reported and skipped; the run continues. Missing trailing components are
// padded with the empty string, and every component is then widened: empty
// becomes "*", a literal s becomes "*s*". Line order is preserved.
func ParseSpecLines(lines []string, logger *log.Logger) []Pattern {
	patterns := []Pattern{}
	for _, line := range lines {
		parts := strings.Split(line, "/")
		if len(parts) > 3 {
			logger.Warn("too many components, ignoring", "line", line)
			continue
		}
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		patterns = append(patterns, Pattern{
			Artist: widen(parts[0]),
			Album:  widen(parts[1]),
			Track:  widen(parts[2]),
		})
	}
	return patterns
}

// widen converts a spec component into its glob form.
func widen(component string) string {
	if component == "" {
		return "*"
	}
	return "*" + escapeGlob(component) + "*"
}

// escapeGlob escapes filepath.Match metacharacters in a user literal so the
// component only ever matches as a plain substring.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
