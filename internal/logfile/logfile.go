// Package logfile loads a devlog entry file into its ordered task sequence.
package logfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/mesh-intelligence/devlog/pkg/types"
)

// fenceMarker delimits a free-form code region. A line whose trimmed
// content starts with it toggles the region; everything inside is exempt
// from task parsing.
const fenceMarker = "```"

// Load reads the devlog file at path and returns its tasks in file order.
// Lines inside a fenced code block are never parsed as tasks; an
// unterminated fence exempts the remainder of the file. I/O failures
// propagate with no partial result.
func Load(fs afero.Fs, path string) ([]types.Task, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var tasks []types.Task
	inFence := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), fenceMarker) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if task, ok := types.ParseTask(line); ok {
			tasks = append(tasks, task)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tasks, nil
}
