package logfile

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/devlog/pkg/types"
)

func writeLog(t *testing.T, fs afero.Fs, content string) string {
	t.Helper()
	const path = "/repo/2026-08-23-001.devlog"
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeLog(t, fs,
		"+ DONE\n"+
			"- BLOCKED\n"+
			"* INCOMPLETE\n"+
			"^ STARTED\n"+
			"COMMENT\n")

	tasks, err := Load(fs, path)
	require.NoError(t, err)

	expected := []types.Task{
		{Status: types.StatusDone, Text: " DONE"},
		{Status: types.StatusBlocked, Text: " BLOCKED"},
		{Status: types.StatusToDo, Text: " INCOMPLETE"},
		{Status: types.StatusStarted, Text: " STARTED"},
	}
	assert.Equal(t, expected, tasks)
}

func TestLoadFencedBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string // rendered task lines, in order
	}{
		{
			name: "tasks inside a fence are excluded",
			content: "* before\n" +
				"```\n" +
				"* inside fence\n" +
				"+ also inside\n" +
				"```\n" +
				"* after\n",
			want: []string{"* before", "* after"},
		},
		{
			name: "multiple complete fence pairs",
			content: "```\n* one\n```\n" +
				"* kept\n" +
				"```\n+ two\n```\n" +
				"- also kept\n",
			want: []string{"* kept", "- also kept"},
		},
		{
			name: "unterminated fence exempts the rest of the file",
			content: "* kept\n" +
				"```\n" +
				"* lost\n" +
				"+ lost too\n",
			want: []string{"* kept"},
		},
		{
			name:    "fence with language suffix still toggles",
			content: "```go\n* inside\n```\n* outside\n",
			want:    []string{"* outside"},
		},
		{
			name:    "indented fence delimiter",
			content: "  ```\n* inside\n  ```\n* outside\n",
			want:    []string{"* outside"},
		},
		{
			name:    "fence lines are never tasks themselves",
			content: "```\n```\n",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := writeLog(t, fs, tt.content)

			tasks, err := Load(fs, path)
			require.NoError(t, err)

			var got []string
			for _, task := range tasks {
				got = append(got, task.Render())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeLog(t, fs, "")

	tasks, err := Load(fs, path)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	tasks, err := Load(fs, "/repo/absent.devlog")
	assert.Error(t, err)
	assert.Nil(t, tasks, "no partial result on failure")
}
