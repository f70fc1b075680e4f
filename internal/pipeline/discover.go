package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// isDirSymlink reports whether d is a symlink resolving to a directory.
// WalkDir does not descend into it, but it still counts as a match.
func isDirSymlink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Discover walks root and returns every directory below it named langName,
// sorted. root itself is never returned, even if it carries that name.
// Matching directories are descended into, so nested matches are found too.
// Unreadable subdirectories are skipped; an unreadable root is an error.
func Discover(root, langName string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if path == root || d.Name() != langName {
			return nil
		}
		if d.IsDir() || isDirSymlink(path, d) {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)
	return dirs, nil
}
