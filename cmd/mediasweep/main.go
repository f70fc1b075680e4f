// Command mediasweep moves media files that no document references into an
// archive folder for review.
//
// It resolves configuration (defaults, --config file, MEDIASWEEP_* env,
// flags), takes the project root from the first argument or an interactive
// prompt, and either runs diagnostics (--check) or the sweep itself.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/mediasweep/internal/check"
	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/display"
	"github.com/backmassage/mediasweep/internal/logging"
	"github.com/backmassage/mediasweep/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
// Bootstrap errors (flags, config, prompt) happen before the logger exists
// and go straight to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := 0
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "mediasweep: %v\n", err)
		return 1
	}
	return code
}

// sweep runs check mode or the archive pipeline with a validated cfg and
// returns the exit code.
func sweep(cfg *config.Config, stdout, stderr io.Writer) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "mediasweep: %v\n", err)
		return 1
	}
	defer log.Close()
	log.SetStreams(stdout, stderr)

	// Logger available: all output goes through log from here on.
	display.PrintBanner(stdout)
	log.Info("=== mediasweep v%s (%s) ===", version, commit)
	log.Info("Root: %s", cfg.Root)
	log.Info("")

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	stats, err := pipeline.Run(cfg, log)
	switch {
	case errors.Is(err, pipeline.ErrRootNotFound):
		return 1
	case err != nil:
		log.Error("%d of %d directories failed", stats.Failed, stats.Total)
		return 1
	}
	return 0
}
