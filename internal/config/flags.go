package config

// This file implements CLI flag binding for the cobra root command.
// Flags are grouped into layout, behavior and display/utility.
// Values land in a Flags holder and are copied into Config by Apply only when
// the user actually set them, so file and environment layers are not
// clobbered by flag defaults.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds parsed flag values until [Flags.Apply] merges them into a Config.
type Flags struct {
	ConfigFile string

	languageDir string
	documentExt string
	mediaDir    string
	archiveDir  string
	keepNames   []string
	onCollision CollisionPolicy

	dryRun   bool
	failFast bool
	check    bool
	report   string

	verbose    bool
	forceColor bool
	noColor    bool
	logFile    string
}

// RegisterFlags defines every mediasweep flag on fs. Defaults shown in help
// come from [DefaultConfig].
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	def := DefaultConfig()

	defineLayoutFlags(fs, f, &def)
	defineBehaviorFlags(fs, f, &def)
	defineDisplayFlags(fs, f)
	return f
}

// defineLayoutFlags registers --lang, --ext, --media-dir, --archive-dir, --keep.
func defineLayoutFlags(fs *pflag.FlagSet, f *Flags, def *Config) {
	fs.StringVar(&f.languageDir, "lang", def.LanguageDirName, "Language directory name to process")
	fs.StringVar(&f.documentExt, "ext", def.DocumentExtension, "Document file extension (case-sensitive)")
	fs.StringVar(&f.mediaDir, "media-dir", def.MediaDirName, "Media folder inside each language dir (also the reference prefix)")
	fs.StringVar(&f.archiveDir, "archive-dir", def.ArchiveDirName, "Archive folder inside the media folder")
	fs.StringSliceVar(&f.keepNames, "keep", def.KeepNames, "Names that are never archived (replaces the default list)")
}

// defineBehaviorFlags registers --on-collision, --dry-run, --fail-fast, --check, --report, --config.
func defineBehaviorFlags(fs *pflag.FlagSet, f *Flags, def *Config) {
	f.onCollision = def.OnCollision
	fs.Var(&collisionPolicyValue{&f.onCollision}, "on-collision", "Archive name collision policy: fail | rename | overwrite")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "Report what would be archived; create and move nothing")
	fs.BoolVar(&f.failFast, "fail-fast", false, "Stop at the first language dir that fails")
	fs.BoolVarP(&f.check, "check", "c", false, "Diagnose the project tree without changing it, then exit")
	fs.StringVar(&f.report, "report", "", "Write a YAML run report to this path")
	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file")
}

// defineDisplayFlags registers --verbose, --color, --no-color, --log.
func defineDisplayFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output (per-document references)")
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
}

// Apply copies every flag the user set on fs into cfg.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	set := func(name string) bool { return fs.Changed(name) }

	if set("lang") {
		cfg.LanguageDirName = f.languageDir
	}
	if set("ext") {
		cfg.DocumentExtension = f.documentExt
	}
	if set("media-dir") {
		cfg.MediaDirName = f.mediaDir
	}
	if set("archive-dir") {
		cfg.ArchiveDirName = f.archiveDir
	}
	if set("keep") {
		cfg.KeepNames = f.keepNames
	}
	if set("on-collision") {
		cfg.OnCollision = f.onCollision
	}
	if set("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if set("fail-fast") {
		cfg.FailFast = f.failFast
	}
	if set("check") {
		cfg.CheckOnly = f.check
	}
	if set("report") {
		cfg.ReportFile = f.report
	}
	if set("verbose") {
		cfg.Verbose = f.verbose
	}
	if set("log") {
		cfg.LogFile = f.logFile
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// pflag.Value adapter so CollisionPolicy can be used with fs.Var.

type collisionPolicyValue struct{ p *CollisionPolicy }

func (c *collisionPolicyValue) String() string { return string(*c.p) }
func (c *collisionPolicyValue) Type() string   { return "policy" }
func (c *collisionPolicyValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "fail":
		*c.p = CollisionFail
	case "rename":
		*c.p = CollisionRename
	case "overwrite":
		*c.p = CollisionOverwrite
	default:
		return fmt.Errorf("invalid collision policy %q (use 'fail', 'rename' or 'overwrite')", s)
	}
	return nil
}
