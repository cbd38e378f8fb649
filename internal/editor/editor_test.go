package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/devlog/internal/hook"
)

// fakeEditor writes a shell script that appends a marker line to the file
// it is invoked on, standing in for a real editor.
func fakeEditor(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor")
	script := "#!/bin/sh\necho edited >> \"$1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestOpen(t *testing.T) {
	repoDir := t.TempDir()
	entry := filepath.Join(repoDir, "2026-08-23-001.devlog")
	require.NoError(t, os.WriteFile(entry, []byte("* task\n"), 0o644))

	var b strings.Builder
	require.NoError(t, Open(&b, fakeEditor(t), repoDir, entry))

	data, err := os.ReadFile(entry)
	require.NoError(t, err)
	assert.Equal(t, "* task\nedited\n", string(data))
	assert.Empty(t, b.String())
}

func TestOpenNonZeroExitIsReported(t *testing.T) {
	repoDir := t.TempDir()
	entry := filepath.Join(repoDir, "2026-08-23-001.devlog")
	require.NoError(t, os.WriteFile(entry, []byte(""), 0o644))

	var b strings.Builder
	err := Open(&b, "false", repoDir, entry)
	require.NoError(t, err, "a failing editor is not fatal")
	assert.Contains(t, b.String(), "exited with status 1")
}

func TestOpenMissingEditor(t *testing.T) {
	repoDir := t.TempDir()
	entry := filepath.Join(repoDir, "2026-08-23-001.devlog")
	require.NoError(t, os.WriteFile(entry, []byte(""), 0o644))

	var b strings.Builder
	err := Open(&b, "/nonexistent/editor", repoDir, entry)
	assert.Error(t, err)
}

func TestOpenRunsEditHooks(t *testing.T) {
	repoDir := t.TempDir()
	entry := filepath.Join(repoDir, "2026-08-23-001.devlog")
	require.NoError(t, os.WriteFile(entry, []byte(""), 0o644))

	hooksDir := hook.Dir(repoDir)
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	for _, hookType := range []string{hook.BeforeEdit, hook.AfterEdit} {
		script := "#!/bin/sh\necho " + hookType + " \"$1\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(hooksDir, hookType), []byte(script), 0o755))
	}

	var b strings.Builder
	require.NoError(t, Open(&b, "true", repoDir, entry))

	out := b.String()
	assert.Contains(t, out, "before-edit "+entry)
	assert.Contains(t, out, "after-edit "+entry)
}
