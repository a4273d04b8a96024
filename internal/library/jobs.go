package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Conversion is an ordered source/destination format pair.
type Conversion struct {
	From Format
	To   Format
}

func (c Conversion) String() string {
	return string(c.From) + "->" + string(c.To)
}

// Job is a single source-to-destination file transfer. Conversion is nil
// when the source format is already acceptable on the target device.
type Job struct {
	Source     string // path relative to the library root
	Dest       string // absolute path under the target root
	Conversion *Conversion
}

// ResolveJob decides destination and conversion for one matched source file.
//
// A source whose format is allowed is copied as-is. Otherwise the destination
// format is the best allowed format overall by the fixed quality order; it is
// deliberately not capped at the source's own quality, so a low-quality
// source with only higher-quality formats allowed is still re-encoded.
func ResolveJob(source string, allowed AllowedSet, targetRoot string) Job {
	format, err := FormatFromPath(source)
	if err != nil {
		// Matching only ever yields supported extensions.
		panic("resolve job: " + source + ": " + err.Error())
	}

	if allowed[format] {
		return Job{Source: source, Dest: filepath.Join(targetRoot, source)}
	}

	dest := allowed.Best()
	stem := strings.TrimSuffix(source, filepath.Ext(source))
	return Job{
		Source:     source,
		Dest:       filepath.Join(targetRoot, stem+dest.Ext()),
		Conversion: &Conversion{From: format, To: dest},
	}
}

// BuildJobSet expands every pattern and resolves a job per matched file.
//
// The map is keyed by source path; a file matched by several specification
// lines resolves to the same job, so later insertions harmlessly overwrite
// earlier ones. An empty result means nothing matched, which is "nothing to
// do" for the caller, not an error.
func BuildJobSet(root string, patterns []Pattern, allowed AllowedSet, targetRoot string, logger *log.Logger) (map[string]Job, error) {
	jobs := map[string]Job{}
	for _, p := range patterns {
		matches, err := ExpandPattern(root, p)
		if err != nil {
			return nil, err
		}
		logger.Debug("expanded pattern", "pattern", p.String(), "matches", len(matches))
		for _, m := range matches {
			jobs[m] = ResolveJob(m, allowed, targetRoot)
		}
	}
	return jobs, nil
}

// FilterAgainstTarget drops every job whose destination already exists when
// overwrite is false. With overwrite set it returns the input unchanged.
// Pure filter; existing files are how completed jobs are recognised on a
// re-run, so this is also the resume path.
func FilterAgainstTarget(jobs map[string]Job, overwrite bool) map[string]Job {
	if overwrite {
		return jobs
	}
	remaining := map[string]Job{}
	for src, job := range jobs {
		if _, err := os.Stat(job.Dest); err == nil {
			continue
		}
		remaining[src] = job
	}
	return remaining
}
