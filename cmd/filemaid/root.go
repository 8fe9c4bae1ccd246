package filemaid

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/filemaid/filemaid/internal/version"
	"github.com/filemaid/filemaid/pkg/core"
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/filesystem"
	"github.com/filemaid/filemaid/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity      int
		dryRun         bool
		recursive      bool
		followSymlinks bool
	)

	rootCmd := &cobra.Command{
		Use:   "filemaid <rules-file> <target-dir>",
		Short: "A declarative file organizer",
		Long: `filemaid scans a directory and applies an ordered set of rules to the
files and directories it finds. Rules live in a YAML file: each rule
pairs a condition (path pattern, content type, age, size, or a boolean
combination of those) with a chain of actions (move, copy, delete).

The first rule whose condition matches a path is the only one applied
to it. Destinations named by move and copy actions are never scanned,
so a rule cannot re-process its own output.`,
		Version: version.Version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath, root := args[0], args[1]

			if info, err := os.Stat(rulesPath); err != nil || info.IsDir() {
				return errors.Newf(errors.ErrNotFound, "No such file: %s", rulesPath)
			}
			if info, err := os.Stat(root); err != nil || !info.IsDir() {
				return errors.Newf(errors.ErrNotFound, "No such folder: %s", root)
			}

			engine := core.NewEngine(filesystem.NewOS(), core.Options{
				RulesPath:      rulesPath,
				Root:           root,
				DryRun:         dryRun,
				Recursive:      recursive,
				FollowSymlinks: followSymlinks,
				Out:            cmd.OutOrStdout(),
			})
			return engine.Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Report which rule would match each path without applying actions")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories of the target")
	rootCmd.Flags().BoolVarP(&followSymlinks, "follow-symlinks", "s", false, "Descend into symlinked directories when scanning recursively")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("filemaid version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
