// Package archive relocates unreferenced media out of a language directory's
// media folder into its archive folder.
//
// For one language dir L (e.g. docs/en) with the default layout:
//
//	media   = L/images
//	archive = L/images/archive
//	moved   = Inventory(media) − References(every *.md under L) − {"archive"}
//
// The reference set is computed once, before any move, and nothing is
// re-checked afterwards.
package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/display"
	"github.com/backmassage/mediasweep/internal/inventory"
	"github.com/backmassage/mediasweep/internal/refs"
)

// Logger is the logging surface the archiver needs. *logging.Logger
// satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Move records one relocated (or, in dry-run, to-be-relocated) entry.
type Move struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Size int64  `yaml:"size"` // 0 for directories.
}

// Result describes the processing of one language directory. It is returned
// even when Process fails, holding whatever was done before the failure.
type Result struct {
	LanguageDir  string
	MediaDir     string
	ArchiveDir   string
	Documents    int
	Inventory    int
	Referenced   int
	Unreferenced []string // Sorted.
	Moves        []Move
	BytesMoved   int64
	DryRun       bool
}

// Moved returns the number of entries relocated.
func (r *Result) Moved() int { return len(r.Moves) }

// Archiver processes language directories according to a Config.
type Archiver struct {
	cfg       *config.Config
	log       Logger
	extractor *refs.Extractor
	keep      map[string]struct{}
}

// New returns an Archiver for cfg. cfg must already be validated.
func New(cfg *config.Config, log Logger) *Archiver {
	return &Archiver{
		cfg:       cfg,
		log:       log,
		extractor: refs.NewExtractor(cfg.MediaDirName),
		keep:      cfg.KeepSet(),
	}
}

// Process archives every unreferenced entry of langDir's media folder.
// Any error aborts the directory; moves already made are kept and reported
// in the returned Result.
func (a *Archiver) Process(langDir string) (*Result, error) {
	res := a.newResult(langDir)
	a.log.Info("Processing directory: %s", langDir)

	// Media folder must already exist; only the archive is created.
	if err := checkMediaDir(res.MediaDir); err != nil {
		return res, err
	}
	if !a.cfg.DryRun {
		if err := os.MkdirAll(res.ArchiveDir, 0o755); err != nil {
			return res, fmt.Errorf("create archive dir: %w", err)
		}
	}

	if err := a.survey(res); err != nil {
		return res, err
	}
	a.log.Info("  All files: %d", res.Inventory)
	a.log.Info("  Referenced files: %d (from %s)", res.Referenced, display.Plural(res.Documents, "document", "documents"))
	a.log.Info("  Unreferenced files: %d", len(res.Unreferenced))
	a.log.Debug("  Unreferenced: %v", res.Unreferenced)

	for _, name := range res.Unreferenced {
		mv, err := a.move(res, name)
		if err != nil {
			return res, err
		}
		res.Moves = append(res.Moves, mv)
		res.BytesMoved += mv.Size
	}

	if a.cfg.DryRun {
		a.log.Success("[DRY] Would move %s to %s", display.Plural(res.Moved(), "file", "files"), res.ArchiveDir)
	} else {
		a.log.Success("Moved %s (%s) to %s", display.Plural(res.Moved(), "file", "files"),
			display.FormatBytes(res.BytesMoved), res.ArchiveDir)
	}
	return res, nil
}

// Plan computes what Process would archive from langDir without creating or
// moving anything. Moves is left empty.
func (a *Archiver) Plan(langDir string) (*Result, error) {
	res := a.newResult(langDir)
	res.DryRun = true
	if err := checkMediaDir(res.MediaDir); err != nil {
		return res, err
	}
	return res, a.survey(res)
}

func (a *Archiver) newResult(langDir string) *Result {
	media := filepath.Join(langDir, a.cfg.MediaDirName)
	return &Result{
		LanguageDir: langDir,
		MediaDir:    media,
		ArchiveDir:  filepath.Join(media, a.cfg.ArchiveDirName),
		DryRun:      a.cfg.DryRun,
	}
}

func checkMediaDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMediaDirMissing, path)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrMediaDirMissing, path)
	}
	return nil
}

// survey fills the inventory, reference and unreferenced fields of res.
// References are collected once, before anything moves.
func (a *Archiver) survey(res *Result) error {
	all, err := inventory.List(res.MediaDir, a.keep)
	if err != nil {
		return err
	}
	res.Inventory = len(all)
	a.log.Debug("  Inventory: %v", all.Sorted())

	referenced, docs, err := a.collectReferences(res.LanguageDir)
	res.Documents = docs
	if err != nil {
		return err
	}
	res.Referenced = len(referenced)
	a.log.Debug("  Referenced: %v", referenced.Sorted())

	res.Unreferenced = all.Minus(referenced, refs.NewSet(a.cfg.ArchiveDirName)).Sorted()
	return nil
}

// collectReferences walks langDir and extracts references from every
// document. It returns the union and the number of documents read.
func (a *Archiver) collectReferences(langDir string) (refs.Set, int, error) {
	docs, err := FindDocuments(langDir, a.cfg.DocumentExtension)
	if err != nil {
		return nil, 0, err
	}

	referenced := make(refs.Set)
	bar := display.NewProgress(len(docs), "Scanning documents", !a.cfg.Verbose)
	defer bar.Finish()

	for i, path := range docs {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, i, fmt.Errorf("%w %s: %w", ErrDocumentRead, path, err)
		}
		if !utf8.Valid(data) {
			return nil, i, fmt.Errorf("%w %s: invalid UTF-8", ErrDocumentRead, path)
		}
		found := a.extractor.Extract(normalizeNewlines(string(data)))
		if len(found) > 0 {
			a.log.Debug("  %s: %v", path, found.Sorted())
		}
		referenced.AddAll(found)
		_ = bar.Add(1)
	}
	return referenced, len(docs), nil
}

// normalizeNewlines turns CRLF and lone CR line endings into LF so that the
// extractor's "." never spans a line break.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// FindDocuments returns every non-directory under root whose name ends in
// ext (case-sensitive), sorted. Symlinks to directories are neither
// documents nor descended into.
func FindDocuments(root, ext string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if fi, err := os.Stat(path); err == nil && fi.IsDir() {
				return nil
			}
		}
		docs = append(docs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(docs)
	return docs, nil
}

// move relocates one inventory entry into the archive, or only describes the
// move in dry-run mode.
func (a *Archiver) move(res *Result, name string) (Move, error) {
	src := filepath.Join(res.MediaDir, name)
	mv := Move{Name: name, From: src}

	if info, err := os.Lstat(src); err == nil && info.Mode().IsRegular() {
		mv.Size = info.Size()
	}

	if a.cfg.DryRun {
		mv.To = filepath.Join(res.ArchiveDir, name)
		a.log.Info("  [DRY] Would archive: %s", name)
		return mv, nil
	}

	dst, err := destination(res.ArchiveDir, name, a.cfg.OnCollision)
	if err != nil {
		return mv, err
	}
	if err := os.Rename(src, dst); err != nil {
		return mv, fmt.Errorf("move %s: %w", name, err)
	}
	mv.To = dst
	if filepath.Base(dst) != name {
		a.log.Warn("  Archived (renamed): %s -> %s", name, filepath.Base(dst))
	} else {
		a.log.Info("  Archived: %s", name)
	}
	return mv, nil
}
