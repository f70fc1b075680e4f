// Package check provides read-only diagnostics of a project tree (--check):
// which language directories exist, whether each has its media folder, what
// a sweep would archive from it, and whether archive folders are still
// waiting to be reviewed and deleted.
package check

import (
	"errors"
	"os"

	"github.com/backmassage/mediasweep/internal/archive"
	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here so check stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// DirStatus is the diagnosis of one language directory.
type DirStatus struct {
	Dir            string
	MediaDirExists bool
	Documents      int
	Inventory      int
	Unreferenced   int   // Entries a sweep would archive.
	PendingArchive int   // Entries left in the archive folder; -1 if there is none.
	Err            error // Planning failure, e.g. an unreadable document.
}

// RunCheck logs the diagnosis of cfg.Root and reports whether the tree is
// ready to sweep: the root exists and every language dir has a media folder.
// It never modifies the filesystem.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Project Check ===")

	if err := pipeline.CheckRoot(cfg.Root); err != nil {
		log.Error("Root: %v", err)
		return false
	}
	log.Success("Root: %s", cfg.Root)

	dirs, err := pipeline.Discover(cfg.Root, cfg.LanguageDirName)
	if err != nil {
		log.Error("Discovery failed: %v", err)
		return false
	}
	if len(dirs) == 0 {
		log.Warn("No directories named %q found", cfg.LanguageDirName)
		return true
	}

	ok := true
	a := archive.New(cfg, log)
	for _, dir := range dirs {
		st := Inspect(a, dir)
		if !reportDir(cfg, log, st) {
			ok = false
		}
	}
	return ok
}

// Inspect diagnoses one language directory without touching it.
func Inspect(a *archive.Archiver, dir string) DirStatus {
	st := DirStatus{Dir: dir, PendingArchive: -1}

	res, err := a.Plan(dir)
	switch {
	case errors.Is(err, archive.ErrMediaDirMissing):
		return st
	case err != nil:
		st.MediaDirExists = true
		st.Err = err
	default:
		st.MediaDirExists = true
		st.Inventory = res.Inventory
		st.Unreferenced = len(res.Unreferenced)
	}
	st.Documents = res.Documents

	if entries, err := os.ReadDir(res.ArchiveDir); err == nil {
		st.PendingArchive = len(entries)
	}
	return st
}

// reportDir logs st and returns false when the directory cannot be swept.
func reportDir(cfg *config.Config, log Logger, st DirStatus) bool {
	log.Info("%s", st.Dir)
	if !st.MediaDirExists {
		log.Error("  Missing %s/ folder", cfg.MediaDirName)
		return false
	}
	if st.Err != nil {
		log.Error("  %v", st.Err)
		return false
	}
	if st.Documents == 0 {
		log.Warn("  No *%s documents: every media file would be archived", cfg.DocumentExtension)
	} else {
		log.Success("  %d *%s documents", st.Documents, cfg.DocumentExtension)
	}
	log.Info("  %d media entries, %d would be archived", st.Inventory, st.Unreferenced)
	if st.PendingArchive > 0 {
		log.Warn("  %s/%s/ still holds %d entries: review and delete before publishing",
			cfg.MediaDirName, cfg.ArchiveDirName, st.PendingArchive)
	}
	return true
}
