// Package inventory lists the entries of a media folder that are candidates
// for archiving.
package inventory

import (
	"fmt"
	"os"

	"github.com/backmassage/mediasweep/internal/refs"
)

// List returns the names directly inside mediaDir, minus the names in keep.
// It does not descend; subdirectories (including the archive folder) are
// listed like files. A missing or unreadable mediaDir is an error.
func List(mediaDir string, keep map[string]struct{}) (refs.Set, error) {
	entries, err := os.ReadDir(mediaDir)
	if err != nil {
		return nil, fmt.Errorf("read media dir %s: %w", mediaDir, err)
	}
	out := make(refs.Set, len(entries))
	for _, e := range entries {
		if _, kept := keep[e.Name()]; kept {
			continue
		}
		out.Add(e.Name())
	}
	return out, nil
}
