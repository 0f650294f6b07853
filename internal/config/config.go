package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Config represents the complete git-pr configuration.
type Config struct {
	Branch BranchConfig `toml:"branch"`
	Editor EditorConfig `toml:"editor"`
	Forge  ForgeConfig  `toml:"forge"`
	Remote RemoteConfig `toml:"remote"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.Branch.DefaultTarget == "" {
		return errors.New("branch.default_target cannot be empty")
	}
	if c.Editor.MessageFile == "" {
		return errors.New("editor.message_file cannot be empty")
	}
	if c.Forge.Host == "" {
		return errors.New("forge.host cannot be empty")
	}
	if c.Forge.TokenEnv == "" {
		return errors.New("forge.token_env cannot be empty")
	}
	if c.Forge.APIURL != "" {
		u, err := url.Parse(c.Forge.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("forge.api_url must be an absolute http(s) URL, got %q", c.Forge.APIURL)
		}
	}
	if c.Remote.Default == "" {
		return errors.New("remote.default cannot be empty")
	}
	return nil
}

// BranchConfig configures branch selection.
type BranchConfig struct {
	DefaultTarget string `toml:"default_target"` // base branch when none is given, e.g. "master"
}

// EditorConfig configures message editing.
type EditorConfig struct {
	Command string `toml:"command"` // empty falls back to $GIT_EDITOR, $VISUAL, $EDITOR, vi
	// MessageFile is the scratch file, relative to the .git directory unless absolute.
	MessageFile string `toml:"message_file"`
}

// ForgeConfig configures the hosted git service.
type ForgeConfig struct {
	APIURL   string `toml:"api_url"`   // empty derives the URL from Host
	Host     string `toml:"host"`      // host accepted in remote URLs
	TokenEnv string `toml:"token_env"` // environment variable holding the token
	Username string `toml:"username"`  // basic-auth user, empty means the repo author
}

// RemoteConfig configures remote selection.
type RemoteConfig struct {
	Default string `toml:"default"` // remote used when none is given
}
