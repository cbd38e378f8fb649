// Package editor opens a devlog entry in an external text editor program.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mesh-intelligence/devlog/internal/hook"
)

// Open launches prog on path, bracketed by the before-edit and after-edit
// hooks. The editor runs in the foreground on the caller's terminal. A
// non-zero exit or signal termination is reported to w but does not fail
// the command.
func Open(w io.Writer, prog, repoDir, path string) error {
	if err := hook.Execute(w, repoDir, hook.BeforeEdit, path); err != nil {
		return err
	}
	if err := openInEditor(w, prog, path); err != nil {
		return err
	}
	return hook.Execute(w, repoDir, hook.AfterEdit, path)
}

func openInEditor(w io.Writer, prog, path string) error {
	cmd := exec.Command(prog, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			fmt.Fprintf(w, "Command `%s %s` exited with status %d\n", prog, path, code)
		} else {
			fmt.Fprintln(w, "Process terminated by signal")
		}
		return nil
	}
	return fmt.Errorf("run editor %s: %w", prog, err)
}
