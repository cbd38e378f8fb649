// Tail command: print the contents of the most recent devlog files.
package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var tailLimit int

// tailSeparator is printed between consecutive devlog files.
const tailSeparator = "\n~~~~~~~~~~~~~~~~~~~~~~\n"

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show recent devlogs",
	RunE:  runTail,
}

func init() {
	tailCmd.Flags().IntVarP(&tailLimit, "limit", "n", 2, "maximum number of log files to display")
}

func runTail(cmd *cobra.Command, args []string) error {
	if tailLimit < 1 {
		return exitError(exitUserError, "limit must be >= 1")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}
	if err := abortIfNotInitialized(repo); err != nil {
		return err
	}

	logs, err := repo.Tail(tailLimit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, logPath := range logs {
		if i > 0 {
			fmt.Fprint(w, tailSeparator)
		}
		data, err := afero.ReadFile(repo.Fs(), logPath.Path())
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}
