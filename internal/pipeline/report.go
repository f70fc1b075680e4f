package pipeline

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/mediasweep/internal/archive"
	"github.com/backmassage/mediasweep/internal/config"
)

// Report is the YAML document written by --report.
type Report struct {
	ScannedAt    time.Time   `yaml:"scanned_at"`
	Root         string      `yaml:"root"`
	DryRun       bool        `yaml:"dry_run"`
	LanguageDirs []DirReport `yaml:"language_dirs"`
	Totals       Totals      `yaml:"totals"`
}

// DirReport summarizes one language directory.
type DirReport struct {
	LanguageDir string         `yaml:"language_dir"`
	ArchiveDir  string         `yaml:"archive_dir"`
	Documents   int            `yaml:"documents"`
	Inventory   int            `yaml:"inventory"`
	Referenced  int            `yaml:"referenced"`
	Moved       []archive.Move `yaml:"moved,omitempty"`
	BytesMoved  int64          `yaml:"bytes_moved"`
	Error       string         `yaml:"error,omitempty"`
}

// Totals aggregates the run.
type Totals struct {
	Directories int   `yaml:"directories"`
	Failed      int   `yaml:"failed"`
	Moved       int   `yaml:"moved"`
	BytesMoved  int64 `yaml:"bytes_moved"`
}

// NewReport builds a Report from the stats of a finished run.
func NewReport(cfg *config.Config, stats *RunStats) Report {
	rep := Report{
		ScannedAt: time.Now().UTC().Truncate(time.Second),
		Root:      cfg.Root,
		DryRun:    cfg.DryRun,
		Totals: Totals{
			Directories: stats.Total,
			Failed:      stats.Failed,
			Moved:       stats.Moved,
			BytesMoved:  stats.BytesMoved,
		},
	}
	for _, o := range stats.Outcomes {
		var dr DirReport
		if r := o.Result; r != nil {
			dr = DirReport{
				LanguageDir: r.LanguageDir,
				ArchiveDir:  r.ArchiveDir,
				Documents:   r.Documents,
				Inventory:   r.Inventory,
				Referenced:  r.Referenced,
				Moved:       r.Moves,
				BytesMoved:  r.BytesMoved,
			}
		}
		if o.Err != nil {
			dr.Error = o.Err.Error()
		}
		rep.LanguageDirs = append(rep.LanguageDirs, dr)
	}
	return rep
}

// WriteReport marshals rep as YAML to path.
func WriteReport(path string, rep Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
