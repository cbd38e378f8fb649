// Shared helpers for devlog CLI commands.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/devlog/internal/hook"
	"github.com/mesh-intelligence/devlog/internal/repository"
	"github.com/mesh-intelligence/devlog/pkg/types"
)

// exitError prints the message to stderr and exits with the given code.
// Commands use this for user errors where cobra's "Error:" prefix would
// get in the way of the message.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}

// promptConfirm asks a y/n question on the command's streams. The --yes
// flag answers affirmatively without prompting.
func promptConfirm(cmd *cobra.Command, msg string) (bool, error) {
	if flagYes {
		return true, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/n] ", msg)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// openRepo resolves the repository directory and returns a repository
// rooted there. The directory may not exist yet.
func openRepo() (*repository.Repository, error) {
	dir, err := resolveRepoDir()
	if err != nil {
		return nil, fmt.Errorf("resolve repository dir: %w", err)
	}
	return repository.New(dir), nil
}

// abortIfNotInitialized exits with a user error when the repository
// directory does not exist.
func abortIfNotInitialized(repo *repository.Repository) error {
	err := repo.RequireInitialized()
	if errors.Is(err, types.ErrNotInitialized) {
		return exitError(exitUserError, fmt.Sprintf(
			"Repository at %s has not been initialized.\nPlease run `devlog init` to initialize the repository.",
			repo.Path()))
	}
	return err
}

// initializeIfNecessary offers to create the repository when it is missing
// and reports whether it was created. A declined prompt exits successfully.
func initializeIfNecessary(cmd *cobra.Command, repo *repository.Repository) (bool, error) {
	ok, err := repo.Initialized()
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}

	confirmed, err := promptConfirm(cmd, fmt.Sprintf("Initialize devlog repository at %s?", repo.Path()))
	if err != nil {
		return false, err
	}
	if !confirmed {
		os.Exit(exitSuccess)
	}

	if _, err := repo.Init(); err != nil {
		return false, err
	}
	if err := hook.Init(repo.Path()); err != nil {
		return false, err
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return false, err
	}
	if err := writeConfigIfMissing(configDir, repo.Path()); err != nil {
		return false, err
	}
	return true, nil
}
