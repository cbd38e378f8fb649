// Init command: create the devlog repository.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new devlog repository if it does not already exist",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	created, err := initializeIfNecessary(cmd, repo)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if created {
		fmt.Fprintln(w, "Success!  Now you can open your devlog using `devlog edit`")
	} else {
		fmt.Fprintf(w, "Devlog repository already exists at %s\n", repo.Path())
	}
	return nil
}
