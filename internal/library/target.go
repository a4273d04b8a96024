package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dmayle/carry/internal/shared"
)

// Decisions records the user's answers for target directory handling,
// gathered up front so resolution itself never blocks on input.
type Decisions struct {
	Clean     bool // wipe a non-empty target before syncing
	Overwrite bool // replace existing destination files when not cleaning
	Proceed   bool // final confirmation before any work starts
}

// PrepareTarget drives the target directory into a usable state and returns
// the effective overwrite flag for [FilterAgainstTarget].
//
// A missing target is created. A non-empty target is either cleaned (its
// contents removed) or kept; only a kept, non-empty target consults the
// overwrite decision, since a fresh or cleaned directory has nothing to
// collide with.
func PrepareTarget(root string, d Decisions, logger *log.Logger) (bool, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(root, 0755); err != nil {
			return false, fmt.Errorf("failed to create target directory: %w", err)
		}
		logger.Info("created target directory", "path", root)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to inspect target directory: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: target %s is not a directory", shared.ErrInvalidArgument, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("failed to list target directory: %w", err)
	}
	if len(entries) == 0 {
		return true, nil
	}

	if d.Clean {
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
				return false, fmt.Errorf("failed to clean target directory: %w", err)
			}
		}
		logger.Info("cleaned target directory", "path", root, "removed", len(entries))
		return true, nil
	}

	return d.Overwrite, nil
}
