package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "n/a"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "git-pr [remote] [target]",
	Short: "Open a pull request for the current branch",
	Long: `git-pr opens a pull request from the checked-out branch into a target branch.

The repository owner and name are read from the remote's URL in .git/config and
the current branch from .git/HEAD. The title and description are written in your
editor; the first line is the title and the rest is the description.

The token is read from $GITHUB_TOKEN (see forge.token_env in git-pr.toml).

Examples:
  git-pr                    # origin, into master
  git-pr upstream main
  git-pr origin develop -m "Fix login redirect"`,
	Args:          cobra.MaximumNArgs(2),
	RunE:          runCreate,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	addCreateFlags(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
