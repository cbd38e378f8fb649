// Package status renders aggregated task views across recent devlog files.
package status

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/devlog/internal/logfile"
	"github.com/mesh-intelligence/devlog/internal/repository"
	"github.com/mesh-intelligence/devlog/pkg/types"
)

// DisplayMode selects which task sections a status report renders.
type DisplayMode struct {
	all    bool
	status string
}

// ShowAll renders every non-empty status section.
func ShowAll() DisplayMode {
	return DisplayMode{all: true}
}

// ShowOnly renders exactly one status section, even when it is empty, so
// "no tasks of this kind" is visible in the output.
func ShowOnly(status string) DisplayMode {
	return DisplayMode{status: status}
}

// Print renders the tasks of the devlog file back steps before the latest
// (0 = latest). A back offset beyond the available files fails with
// types.ErrBackTooFar rather than producing an empty report.
func Print(w io.Writer, repo *repository.Repository, back int, mode DisplayMode) error {
	logs, err := repo.Tail(back + 1)
	if err != nil {
		return err
	}
	if len(logs) < back+1 {
		return fmt.Errorf("%w: back %d with %d file(s)", types.ErrBackTooFar, back, len(logs))
	}

	// Tail returns most recent first, so the target sits at index back.
	tasks, err := logfile.Load(repo.Fs(), logs[back].Path())
	if err != nil {
		return err
	}

	groups := partition(tasks)
	if !mode.all {
		return printSection(w, mode.status, groups[mode.status])
	}

	first := true
	for _, status := range types.AllStatuses {
		if len(groups[status]) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		if err := printSection(w, status, groups[status]); err != nil {
			return err
		}
	}
	return nil
}

// partition groups tasks by status, preserving in-file order within each group.
func partition(tasks []types.Task) map[string][]types.Task {
	groups := make(map[string][]types.Task, len(types.AllStatuses))
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}

// printSection writes one labelled status section. An empty group still
// gets its header.
func printSection(w io.Writer, status string, tasks []types.Task) error {
	if _, err := fmt.Fprintf(w, "%s:\n", types.StatusLabel(status)); err != nil {
		return err
	}
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}
	return nil
}
