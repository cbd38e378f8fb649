// Rollover command: carry unfinished tasks into a new devlog file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/devlog/internal/hook"
	"github.com/mesh-intelligence/devlog/internal/rollover"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Create a new devlog file with incomplete and blocked tasks from the current devlog file",
	RunE:  runRollover,
}

func runRollover(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}
	if err := abortIfNotInitialized(repo); err != nil {
		return err
	}

	latest, err := repo.Latest()
	if err != nil {
		return err
	}
	if latest == nil {
		// Only possible if the repository was emptied between the
		// initialization check and now.
		return exitError(exitUserError, "Could not find devlog file to rollover")
	}

	confirmed, err := promptConfirm(cmd, "Rollover incomplete tasks?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	w := cmd.OutOrStdout()
	if err := hook.Execute(w, repo.Path(), hook.BeforeRollover, latest.Path()); err != nil {
		return err
	}

	next, count, err := rollover.Rollover(repo, *latest)
	if err != nil {
		return err
	}

	if err := hook.Execute(w, repo.Path(), hook.AfterRollover, latest.Path(), next.Path()); err != nil {
		return err
	}

	fmt.Fprintf(w, "Imported %d tasks into %s\n", count, next.Path())
	return nil
}
