package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/backmassage/mediasweep/internal/archive"
	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/display"
	"github.com/backmassage/mediasweep/internal/logging"
)

// ErrRootNotFound is returned (wrapped) when the project root does not exist.
var ErrRootNotFound = errors.New("project root not found")

// Reminder is printed at the end of every run.
const Reminder = "Check the new archive folders for any media removed in error,\n" +
	"then delete the archive folders to prevent issues\n" +
	"when publishing the project."

// Run is the top-level batch entry point. It locates language directories
// under cfg.Root, archives each one, writes the optional report, and returns
// aggregate stats plus every per-directory error joined together.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	if err := CheckRoot(cfg.Root); err != nil {
		log.Error("The project %s does not exist there.", cfg.Root)
		return stats, err
	}

	dirs, err := Discover(cfg.Root, cfg.LanguageDirName)
	if err != nil {
		log.Error("Directory discovery failed: %v", err)
		return stats, err
	}
	stats.Total = len(dirs)
	logBatchHeader(cfg, log, &stats)

	a := archive.New(cfg, log)
	var errs []error
	for i, dir := range dirs {
		stats.Current = i + 1
		log.Info("[%d/%d] %s", stats.Current, stats.Total, dir)

		res, err := a.Process(dir)
		stats.record(res, err)
		if err != nil {
			log.Error("Failed: %v", err)
			errs = append(errs, fmt.Errorf("%s: %w", dir, err))
			if cfg.FailFast {
				log.Warn("Stopping after first failure (--fail-fast)")
				break
			}
		}
		log.Info("")
	}

	logSummary(cfg, log, &stats)

	if cfg.ReportFile != "" {
		if err := WriteReport(cfg.ReportFile, NewReport(cfg, &stats)); err != nil {
			log.Error("Failed to save report: %v", err)
			errs = append(errs, err)
		} else {
			log.Info("Report saved to: %s", cfg.ReportFile)
		}
	}

	log.Warn("%s", Reminder)
	return stats, errors.Join(errs...)
}

// CheckRoot returns an error wrapping ErrRootNotFound when root does not
// exist, and any other stat error as is.
func CheckRoot(root string) error {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return err
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %s named %q", display.Plural(stats.Total, "directory", "directories"), cfg.LanguageDirName)
	log.Info("Documents: *%s | Media: %s/ | Archive: %s/%s/",
		cfg.DocumentExtension, cfg.MediaDirName, cfg.MediaDirName, cfg.ArchiveDirName)
	log.Info("Always kept: %v", cfg.SortedKeepNames())
	log.Info("On collision: %s", cfg.OnCollision)
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be created or moved")
	}
	log.Info("")
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d processed, %d failed", stats.Succeeded, stats.Failed)
	if cfg.DryRun {
		log.Info("  Would move: %s", display.Plural(stats.Moved, "file", "files"))
		return
	}
	log.Success("  Moved: %s (%s)", display.Plural(stats.Moved, "file", "files"), display.FormatBytes(stats.BytesMoved))
}
