// Edit command: open the most recent devlog file in the editor.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/devlog/internal/editor"
	"github.com/mesh-intelligence/devlog/internal/repository"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the most recent devlog file",
	Long: `Edit opens the most recent devlog file in a text editor.

Uses the editor program from the editor config value or $DEVLOG_EDITOR,
which defaults to nano if not set.`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}
	if _, err := initializeIfNecessary(cmd, repo); err != nil {
		return err
	}

	latest, err := repo.Latest()
	if err != nil {
		return err
	}

	var entry repository.LogPath
	if latest != nil {
		entry = *latest
	} else {
		// The directory exists but holds no devlog files (removed
		// out-of-band); re-initialize so there is something to edit.
		entry, err = repo.Init()
		if err != nil {
			return err
		}
	}

	return editor.Open(cmd.OutOrStdout(), resolveEditor(), repo.Path(), entry.Path())
}
