package transcode

import (
	"fmt"

	"github.com/dmayle/carry/internal/library"
	"github.com/dmayle/carry/internal/shared"
)

// Rules maps a format conversion to the encoder flags for its destination
// format. The flags are spliced into the invocation between input and output.
type Rules map[library.Conversion][]string

// BuildRules assembles the conversion table from the per-destination quality
// flags in configuration. Every ordered pair of distinct supported formats
// gets an entry, since job resolution can request any of them.
func BuildRules(quality map[string][]string) (Rules, error) {
	rules := Rules{}
	for _, from := range library.AllFormats {
		for _, to := range library.AllFormats {
			if from == to {
				continue
			}
			flags, ok := quality[string(to)]
			if !ok {
				return nil, fmt.Errorf("%w: no quality flags for format %s", shared.ErrInvalidConfig, to)
			}
			rules[library.Conversion{From: from, To: to}] = flags
		}
	}
	return rules, nil
}

// Validate checks the table covers every pair the quality order can produce.
// A missing pair is a configuration error, caught before any work starts.
func (r Rules) Validate() error {
	for _, from := range library.AllFormats {
		for _, to := range library.AllFormats {
			if from == to {
				continue
			}
			conv := library.Conversion{From: from, To: to}
			if _, ok := r[conv]; !ok {
				return fmt.Errorf("%w: no conversion rule for %s", shared.ErrInvalidConfig, conv)
			}
		}
	}
	return nil
}
