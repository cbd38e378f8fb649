// Package repository maps a single root directory to the set of dated
// devlog entry files and answers repository-level queries.
package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/mesh-intelligence/devlog/pkg/types"
)

// MaxSeqPerDay caps the number of devlog files created for a single date.
// The sequence component of a file name has three digits.
const MaxSeqPerDay = 999

// Repository owns the on-disk directory of dated devlog files.
type Repository struct {
	fs   afero.Fs
	root string
	now  func() time.Time
}

// New returns a Repository over the real filesystem rooted at root.
func New(root string) *Repository {
	return NewWithFs(afero.NewOsFs(), root)
}

// NewWithFs returns a Repository over the given filesystem. Tests use an
// in-memory filesystem here.
func NewWithFs(fs afero.Fs, root string) *Repository {
	return &Repository{fs: fs, root: root, now: time.Now}
}

// Path returns the configured repository root.
func (r *Repository) Path() string { return r.root }

// Fs returns the filesystem the repository operates on.
func (r *Repository) Fs() afero.Fs { return r.fs }

// Initialized reports whether the repository root exists as a directory.
// The filesystem is probed on every call, never cached, so the answer
// reflects concurrent external changes.
func (r *Repository) Initialized() (bool, error) {
	info, err := r.fs.Stat(r.root)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat repository root: %w", err)
	}
	return info.IsDir(), nil
}

// RequireInitialized returns types.ErrNotInitialized when the repository
// root does not exist as a directory.
func (r *Repository) RequireInitialized() error {
	ok, err := r.Initialized()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrNotInitialized, r.root)
	}
	return nil
}

// Init creates the repository root (and parents) and today's devlog file.
// Idempotent per calendar day: when a file dated today already exists the
// newest one is returned and nothing is written.
func (r *Repository) Init() (LogPath, error) {
	if err := r.fs.MkdirAll(r.root, 0o755); err != nil {
		return LogPath{}, fmt.Errorf("create repository root: %w", err)
	}

	logs, err := r.list()
	if err != nil {
		return LogPath{}, err
	}

	today := r.now().Format(dateLayout)
	if n := len(logs); n > 0 && logs[n-1].Date() == today {
		return logs[n-1], nil
	}

	next, err := r.nextLogPath(logs)
	if err != nil {
		return LogPath{}, err
	}
	if err := r.create(next); err != nil {
		return LogPath{}, err
	}
	return next, nil
}

// Latest returns the chronologically last devlog file, or nil when the
// repository holds no devlog files.
func (r *Repository) Latest() (*LogPath, error) {
	logs, err := r.list()
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	last := logs[len(logs)-1]
	return &last, nil
}

// Tail returns up to limit devlog files in descending recency order, most
// recent first. Fewer than limit files is not an error.
func (r *Repository) Tail(limit int) ([]LogPath, error) {
	logs, err := r.list()
	if err != nil {
		return nil, err
	}
	if len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}
	// Reverse in place: list returns ascending chronological order.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

// NextLogPath returns the path of the next devlog file to create, named
// strictly after every existing one. Nothing is written; rollover
// publishes into the returned path through Publish.
func (r *Repository) NextLogPath() (LogPath, error) {
	logs, err := r.list()
	if err != nil {
		return LogPath{}, err
	}
	return r.nextLogPath(logs)
}

// Publish atomically writes content to target: the bytes go to a temporary
// file in the repository root which is then renamed into place, so the
// target either exists fully written or not at all.
func (r *Repository) Publish(target LogPath, content []byte) error {
	tmp, err := afero.TempFile(r.fs, r.root, ".devlog-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		r.fs.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		r.fs.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := r.fs.Rename(tmpName, target.Path()); err != nil {
		r.fs.Remove(tmpName)
		return fmt.Errorf("publish %s: %w", target.Path(), err)
	}
	return nil
}

// list returns every devlog file under the root in ascending chronological
// order. A missing root yields an empty list, not an error.
func (r *Repository) list() ([]LogPath, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read repository root: %w", err)
	}

	var logs []LogPath
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if p, ok := ParseLogPath(filepath.Join(r.root, e.Name())); ok {
			logs = append(logs, p)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Before(logs[j]) })
	return logs, nil
}

// nextLogPath computes the name of the next devlog file: today's date with
// the first free sequence number, bumped past the newest existing file so
// the new name always sorts last.
func (r *Repository) nextLogPath(logs []LogPath) (LogPath, error) {
	date := r.now().Format(dateLayout)
	seq := 1
	if n := len(logs); n > 0 {
		if last := logs[n-1]; last.Date() >= date {
			date = last.Date()
			seq = last.Seq() + 1
		}
	}
	if seq > MaxSeqPerDay {
		return LogPath{}, fmt.Errorf("%w: %s", types.ErrLogFileLimitExceeded, date)
	}
	return NewLogPath(r.root, date, seq), nil
}

// create makes an empty devlog file, refusing to overwrite an existing one.
func (r *Repository) create(p LogPath) error {
	f, err := r.fs.OpenFile(p.Path(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", p.Path(), err)
	}
	return f.Close()
}
