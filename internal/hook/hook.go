// Package hook discovers and runs user-supplied executables at defined
// lifecycle points. Hooks live in the hooks subdirectory of the devlog
// repository; a hook is active iff its file exists and is executable.
package hook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// DirName is the hooks subdirectory inside the repository root.
const DirName = "hooks"

// Hook types. The value is also the hook's filename on disk.
const (
	// BeforeEdit runs before a devlog entry is opened in the editor.
	// One argument: the entry path.
	BeforeEdit = "before-edit"

	// AfterEdit runs after the editor exits successfully.
	// One argument: the entry path.
	AfterEdit = "after-edit"

	// BeforeRollover runs before a devlog entry is rolled over.
	// One argument: the old entry path.
	BeforeRollover = "before-rollover"

	// AfterRollover runs after a rollover completes.
	// Two arguments: the old entry path, then the new entry path.
	AfterRollover = "after-rollover"
)

// AllTypes lists every hook type.
var AllTypes = []string{BeforeEdit, AfterEdit, BeforeRollover, AfterRollover}

// template is the content of a freshly initialized hook file. Hooks are
// created without the execute bit, which keeps them disabled until the
// user opts in.
const template = `#!/usr/bin/env sh
# To enable this hook, make this file executable.
echo "$0 $@"
`

// Dir returns the hooks directory for a repository root.
func Dir(repoDir string) string {
	return filepath.Join(repoDir, DirName)
}

// Init creates disabled template files for every hook type. Existing hook
// files are left untouched.
func Init(repoDir string) error {
	dir := Dir(repoDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}
	for _, hookType := range AllTypes {
		path := filepath.Join(dir, hookType)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat hook %s: %w", hookType, err)
		}
		if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
			return fmt.Errorf("write hook %s: %w", hookType, err)
		}
	}
	return nil
}

// Cmd returns the path of the active hook executable, or "" when the hook
// file is missing or not executable. The permission check happens at call
// time and is never cached.
func Cmd(repoDir, hookType string) (string, error) {
	path := filepath.Join(Dir(repoDir), hookType)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat hook %s: %w", hookType, err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return "", nil
	}
	return path, nil
}

// Execute runs the hook in the foreground if it is active, passing args on
// the command line. A missing or disabled hook is a silent no-op. A
// non-zero exit is reported to w but is not an error.
func Execute(w io.Writer, repoDir, hookType string, args ...string) error {
	path, err := Cmd(repoDir, hookType)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	cmd := exec.Command(path, args...)
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(w, "%s hook exited with status %d\n", hookType, exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("run hook %s: %w", hookType, err)
	}
	return nil
}
