package cmd

import (
	"context"
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/git-pr/internal/config"
	"github.com/jmcampanini/git-pr/internal/failure"
	"github.com/jmcampanini/git-pr/internal/git"
	"github.com/jmcampanini/git-pr/internal/github"
	"github.com/jmcampanini/git-pr/internal/message"
	"github.com/jmcampanini/git-pr/internal/pr"
	"github.com/spf13/cobra"
)

var (
	createDryRunFlag  bool
	createMessageFlag string
)

var createCmd = &cobra.Command{
	Use:   "create [remote] [target]",
	Short: "Open a pull request for the current branch",
	Long: `Create opens a pull request from the checked-out branch into target on remote.

remote defaults to remote.default ("origin") and target to branch.default_target
("master"). Without --message the title and description are written in your
editor; the scratch file is kept at .git/PR_EDITMSG.

With --dry-run the request is printed instead of sent, and no token is needed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCreate,
}

func init() {
	addCreateFlags(createCmd)
	rootCmd.AddCommand(createCmd)
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&createMessageFlag, "message", "m", "", "Use the given message instead of launching an editor")
	cmd.Flags().BoolVar(&createDryRunFlag, "dry-run", false, "Print the request instead of sending it")
}

func runCreate(cmd *cobra.Command, args []string) error {
	opts := createOptions{
		dryRun:  createDryRunFlag,
		message: createMessageFlag,
	}
	return runCreateWithDeps(cmd, args, opts, nil)
}

// createOptions holds the flag values for one invocation.
type createOptions struct {
	dryRun  bool
	message string
}

// createDeps holds injectable dependencies for testing.
type createDeps struct {
	cfg    *config.Config
	cwd    string
	forge  func(github.Config) (github.Forge, error)
	getenv func(string) string
	runner message.Runner
}

func defaultCreateDeps() (*createDeps, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, failure.IO(err, "failed to get current directory")
	}
	return &createDeps{
		cwd: cwd,
		forge: func(cfg github.Config) (github.Forge, error) {
			return github.New(cfg)
		},
		getenv: os.Getenv,
		runner: message.NewShellRunner(),
	}, nil
}

// runCreateWithDeps runs the pipeline strictly in order: HEAD, remote config,
// message, payload, submission. Each stage aborts on the first error.
func runCreateWithDeps(cmd *cobra.Command, args []string, opts createOptions, deps *createDeps) error {
	log := clog.Default().WithPrefix("create")

	if deps == nil {
		var err error
		if deps, err = defaultCreateDeps(); err != nil {
			return err
		}
	}

	repo, err := git.FindRepository(deps.cwd)
	if err != nil {
		return err
	}

	cfg, err := loadCreateConfig(deps, repo)
	if err != nil {
		return err
	}

	remoteName := cfg.Remote.Default
	if len(args) > 0 {
		remoteName = args[0]
	}
	target := cfg.Branch.DefaultTarget
	if len(args) > 1 {
		target = args[1]
	}

	head, err := git.Branch(repo.HeadPath())
	if err != nil {
		return err
	}

	identity, err := git.ReadRepoConfig(repo.ConfigPath(), remoteName, cfg.Forge.Host)
	if err != nil {
		return err
	}
	log.Debug("Resolved repository", "remote", remoteName, "repo", identity.FullName(), "head", head, "target", target)

	req := pr.Request{TargetBranch: target, HeadBranch: head}
	if err := req.Validate(); err != nil {
		return err
	}

	// Resolve the token before the editor so a missing token does not cost the message.
	var token string
	if !opts.dryRun {
		token = deps.getenv(cfg.Forge.TokenEnv)
		if token == "" {
			return failure.Other(nil, "%s is not set", cfg.Forge.TokenEnv)
		}
	}

	msg, err := collectMessage(cfg, repo, opts, deps, target, head)
	if err != nil {
		return err
	}
	req.Message = msg

	payload := pr.BuildPayload(req)

	apiURL := cfg.Forge.APIURL
	if apiURL == "" {
		apiURL = github.APIURLForHost(cfg.Forge.Host)
	}

	if opts.dryRun {
		return printDryRun(cmd.OutOrStdout(), github.Endpoint(apiURL, identity), payload)
	}

	forge, err := deps.forge(github.Config{
		APIURL:   apiURL,
		Token:    token,
		Username: cfg.Forge.Username,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	created, err := forge.Submit(ctx, identity, payload)
	if err != nil {
		return err
	}

	return printCreated(cmd.OutOrStdout(), created)
}

func loadCreateConfig(deps *createDeps, repo git.Repository) (config.Config, error) {
	if deps.cfg != nil {
		return *deps.cfg, nil
	}
	result, err := config.NewDefaultLoader().LoadForRepository(deps.cwd, repo.Root)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return result.Config, nil
}

// collectMessage takes the --message text when given, otherwise runs the editor
// on the templated scratch file.
func collectMessage(cfg config.Config, repo git.Repository, opts createOptions, deps *createDeps, target, head string) (message.Message, error) {
	if opts.message != "" {
		return message.Parse(opts.message)
	}

	editor := message.New(
		repo.Path(cfg.Editor.MessageFile),
		message.ResolveEditor(cfg.Editor.Command, deps.getenv),
		deps.runner,
	)
	if err := editor.Template(target, head); err != nil {
		return message.Message{}, err
	}
	return editor.EditAndParse()
}
