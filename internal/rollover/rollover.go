// Package rollover carries unfinished work from the current devlog file
// into a newly created one.
package rollover

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/mesh-intelligence/devlog/internal/logfile"
	"github.com/mesh-intelligence/devlog/internal/repository"
	"github.com/mesh-intelligence/devlog/pkg/types"
)

// carried reports whether a task survives a rollover. Only to-do and
// blocked tasks are carried; done tasks are finished and started tasks
// count as abandoned rather than blocked.
func carried(t types.Task) bool {
	return t.Status == types.StatusToDo || t.Status == types.StatusBlocked
}

// Rollover creates the next devlog file seeded with the unfinished tasks
// of current, preserving their relative order and original rendering. It
// returns the new file's path and the number of carried tasks; zero is
// valid and still produces a new file. The source file is never modified,
// and the new file is published atomically so a failure leaves no partial
// file behind.
//
// Hooks are not invoked here; the CLI layer brackets this call.
func Rollover(repo *repository.Repository, current repository.LogPath) (repository.LogPath, int, error) {
	tasks, err := logfile.Load(repo.Fs(), current.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", types.ErrNoLogFile, current.Path())
		}
		return repository.LogPath{}, 0, err
	}

	var b strings.Builder
	count := 0
	for _, t := range tasks {
		if !carried(t) {
			continue
		}
		b.WriteString(t.Render())
		b.WriteByte('\n')
		count++
	}

	next, err := repo.NextLogPath()
	if err != nil {
		return repository.LogPath{}, 0, err
	}
	if err := repo.Publish(next, []byte(b.String())); err != nil {
		return repository.LogPath{}, 0, err
	}
	return next, count, nil
}
