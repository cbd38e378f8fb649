// Root command for the devlog CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/devlog/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Global flag values.
var (
	flagConfigDir string
	flagRepoDir   string
	flagYes       bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configRepoDir string
	configEditor  string
)

var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "Track daily development work",
	Long: `Devlog tracks daily development work in dated plain-text files.

Devlog files are created in the repository directory, which resolves from
--repo-dir, the repo_dir config value, or $DEVLOG_REPO, and defaults to
$HOME/devlogs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The version command needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configRepoDir = cfg.GetString(cfgKeyRepoDir)
		configEditor = cfg.GetString(cfgKeyEditor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagRepoDir, "repo-dir", "", "devlog repository directory (default: $HOME/devlogs)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, `automatically answer "yes" to all prompts`)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rolloverCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tailCmd)
}

// resolveRepoDir returns the repository directory following the precedence
// chain: --repo-dir flag > config.yaml repo_dir > DEVLOG_REPO env > default.
func resolveRepoDir() (string, error) {
	return paths.ResolveRepoDir(flagRepoDir, configRepoDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > DEVLOG_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveEditor returns the editor program following the precedence chain:
// config.yaml editor > DEVLOG_EDITOR env > nano.
func resolveEditor() string {
	return paths.ResolveEditor(configEditor)
}
