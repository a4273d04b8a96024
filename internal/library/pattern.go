package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ExpandPattern globs the library root for files matching the pattern.
//
// The track component is suffixed with each supported extension in turn, so
// files in unsupported formats can never match, regardless of specification
// content. User-selected format filtering happens later, at job resolution.
// Returned paths are relative to the root and sorted for stable output.
func ExpandPattern(root string, p Pattern) ([]string, error) {
	matches := []string{}
	for _, f := range AllFormats {
		glob := filepath.Join(root, p.Artist, p.Album, p.Track+f.Ext())
		found, err := filepath.Glob(glob)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pattern %s", err, p)
		}
		for _, m := range found {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			rel, err := filepath.Rel(root, m)
			if err != nil {
				continue
			}
			matches = append(matches, rel)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
