// Status command: show tasks from a recent devlog file grouped by status.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/devlog/internal/status"
	"github.com/mesh-intelligence/devlog/pkg/types"
)

var (
	statusShow string
	statusBack int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent tasks",
	Long: `Status shows the tasks of a devlog file grouped by status.

Example:
  devlog status
  devlog status --show blocked
  devlog status --back 1`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusShow, "show", "s", "all", "sections to show (all, todo, started, blocked, done)")
	statusCmd.Flags().IntVarP(&statusBack, "back", "b", 0, "show tasks from a previous devlog")
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Arguments are validated before anything touches the filesystem.
	mode, err := displayMode(statusShow)
	if err != nil {
		return exitError(exitUserError, err.Error())
	}
	if statusBack < 0 {
		return exitError(exitUserError, "back must be >= 0")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}
	if err := abortIfNotInitialized(repo); err != nil {
		return err
	}

	return status.Print(cmd.OutOrStdout(), repo, statusBack, mode)
}

// displayMode maps the --show value to a display mode.
func displayMode(show string) (status.DisplayMode, error) {
	if show == "all" {
		return status.ShowAll(), nil
	}
	if types.ValidStatus(show) {
		return status.ShowOnly(show), nil
	}
	return status.DisplayMode{}, fmt.Errorf("invalid value %q for --show (expected all, todo, started, blocked, or done)", show)
}
