package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/mediasweep/internal/config"
)

// destination returns the path name should be moved to inside archiveDir
// under policy. With CollisionFail an existing entry yields ErrMoveCollision;
// with CollisionRename the first free "<stem> - dupN<ext>" is chosen;
// CollisionOverwrite leaves the outcome to os.Rename.
func destination(archiveDir, name string, policy config.CollisionPolicy) (string, error) {
	dst := filepath.Join(archiveDir, name)
	if policy == config.CollisionOverwrite {
		return dst, nil
	}

	taken, err := exists(dst)
	if err != nil || !taken {
		return dst, err
	}
	if policy == config.CollisionFail {
		return "", fmt.Errorf("%w: %s", ErrMoveCollision, dst)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		candidate := filepath.Join(archiveDir, fmt.Sprintf("%s - dup%d%s", stem, counter, ext))
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// exists reports whether path names any filesystem entry, without following
// a final symlink.
func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
