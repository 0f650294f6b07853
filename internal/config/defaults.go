package config

// DefaultConfig returns sensible defaults for all configuration.
func DefaultConfig() Config {
	return Config{
		Branch: BranchConfig{
			DefaultTarget: "master",
		},
		Editor: EditorConfig{
			MessageFile: "PR_EDITMSG",
		},
		Forge: ForgeConfig{
			Host:     "github.com",
			TokenEnv: "GITHUB_TOKEN",
		},
		Remote: RemoteConfig{
			Default: "origin",
		},
	}
}
