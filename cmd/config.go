package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jmcampanini/git-pr/internal/config"
	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/git"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print current configuration in TOML format",
	Long: `Print the current effective configuration in TOML format.

This outputs the merged configuration (defaults with any user overrides applied).
The output can be redirected to a file to create a new configuration:

  git-pr config > git-pr.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return failure.IO(err, "failed to get current directory")
	}
	return runConfigIn(cmd, cwd)
}

// runConfigIn prints the config that applies in cwd. Outside a repository only
// the user-level and cwd files apply.
func runConfigIn(cmd *cobra.Command, cwd string) error {
	repoRoot := ""
	if repo, err := git.FindRepository(cwd); err == nil {
		repoRoot = repo.Root
	}

	loadResult, err := config.NewDefaultLoader().LoadForRepository(cwd, repoRoot)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(loadResult.Config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}
