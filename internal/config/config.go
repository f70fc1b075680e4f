// Package config holds runtime configuration: defaults, CLI flag binding,
// YAML file and environment layering, and validation. The defaults describe
// the usual documentation layout: "en" language dirs, ".md" documents, an
// "images" media folder and an "archive" holding area.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// --- Enum types for validated string fields ---

// CollisionPolicy decides what happens when an archive destination already
// holds an entry with the same name.
type CollisionPolicy string

const (
	CollisionFail      CollisionPolicy = "fail"      // Abort the directory (default).
	CollisionRename    CollisionPolicy = "rename"    // Move to "<stem> - dupN<ext>".
	CollisionOverwrite CollisionPolicy = "overwrite" // Plain rename; platform semantics.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then layered by [LoadFile], [ApplyEnv] and [Flags.Apply] before being
// passed (by pointer) to the packages that need it.
type Config struct {
	// Project root (positional arg or interactive prompt).
	Root string `yaml:"-"`

	// Tree layout.
	LanguageDirName   string   `yaml:"language_dir"` // Default: "en".
	DocumentExtension string   `yaml:"document_ext"` // Default: ".md". Case-sensitive suffix.
	MediaDirName      string   `yaml:"media_dir"`    // Default: "images". Also the reference prefix.
	ArchiveDirName    string   `yaml:"archive_dir"`  // Default: "archive".
	KeepNames         []string `yaml:"keep_names"`   // Default: .keep, banner.png.

	// Behavior.
	OnCollision CollisionPolicy `yaml:"on_collision"` // Default: "fail".
	DryRun      bool            `yaml:"dry_run"`
	FailFast    bool            `yaml:"fail_fast"` // Stop at the first failing language dir.
	CheckOnly   bool            `yaml:"-"`         // Run --check diagnostics and exit.

	// Display and logging.
	Verbose    bool      `yaml:"verbose"`
	ColorMode  ColorMode `yaml:"color"`
	LogFile    string    `yaml:"log_file"`
	ReportFile string    `yaml:"report_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LanguageDirName:   "en",
		DocumentExtension: ".md",
		MediaDirName:      "images",
		ArchiveDirName:    "archive",
		KeepNames:         []string{".keep", "banner.png"},
		OnCollision:       CollisionFail,
		ColorMode:         ColorAuto,
	}
}

// KeepSet returns KeepNames as a lookup set. Empty names are dropped.
func (c *Config) KeepSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.KeepNames))
	for _, n := range c.KeepNames {
		n = strings.TrimSpace(n)
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// SortedKeepNames returns the distinct keep names in lexical order, for logs
// and reports.
func (c *Config) SortedKeepNames() []string {
	set := c.KeepSet()
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and the tree layout names, and requires a
// project root.
func (c *Config) Validate() error {
	switch c.OnCollision {
	case CollisionFail, CollisionRename, CollisionOverwrite:
		// valid
	default:
		return fmt.Errorf("invalid collision policy %q (use 'fail', 'rename' or 'overwrite')", c.OnCollision)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	for _, f := range []struct {
		name, value string
	}{
		{"language dir", c.LanguageDirName},
		{"media dir", c.MediaDirName},
		{"archive dir", c.ArchiveDirName},
	} {
		if err := validateName(f.name, f.value); err != nil {
			return err
		}
	}
	if c.ArchiveDirName == c.MediaDirName {
		return errors.New("archive dir must differ from media dir")
	}
	if c.DocumentExtension == "" {
		return errors.New("document extension must not be empty")
	}

	if c.Root == "" {
		return errors.New("need a project root")
	}
	return nil
}

// validateName rejects names that are empty or would escape a single path
// element.
func validateName(what, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%s must not be empty", what)
	case name == "." || name == "..":
		return fmt.Errorf("%s %q is not a valid directory name", what, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%s %q must be a single path element", what, name)
	}
	return nil
}
