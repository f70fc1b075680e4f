package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/mediasweep/internal/config"
)

// newRootCmd builds the mediasweep command. The exit code of a completed
// sweep is stored in code; errors returned from Execute mean bootstrap
// failures.
func newRootCmd(code *int) *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "mediasweep [project_root]",
		Short: "Archive media files no document references",
		Long: `mediasweep walks a documentation project, finds every language directory
(default "en"), collects the media referenced from its Markdown documents
via ![alt](images/...) or <img|video|audio|source src="images/...">, and
moves every unreferenced entry of its images/ folder into images/archive/.

Review the archive folders, then delete them before publishing.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags, args)
			if err != nil {
				return err
			}
			*code = sweep(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
	flags = config.RegisterFlags(cmd.Flags())
	return cmd
}

// resolveConfig layers defaults, the optional config file, the environment
// and changed flags, then fills in the project root and validates.
func resolveConfig(cmd *cobra.Command, flags *config.Flags, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.ConfigFile != "" {
		if err := config.LoadFile(flags.ConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	flags.Apply(cmd.Flags(), &cfg)

	root := ""
	if len(args) == 1 {
		root = args[0]
	} else {
		r, err := promptRoot(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return cfg, err
		}
		root = r
	}
	cfg.Root = config.NormalizeDirArg(root)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
