package repository

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// FileExt is the extension of every devlog entry file.
const FileExt = ".devlog"

// dateLayout is the date portion of a devlog file name.
const dateLayout = "2006-01-02"

// logNameRe matches devlog file names: date plus a zero-padded sequence
// number that disambiguates same-day files.
var logNameRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(\d{3})\.devlog$`)

// LogPath is a devlog entry file together with the ordering key parsed
// from its name. Names follow "YYYY-MM-DD-NNN.devlog"; the sequence is
// always present and zero-padded so that lexical order of names equals
// chronological order.
type LogPath struct {
	path string
	date string // YYYY-MM-DD
	seq  int
}

// NewLogPath builds the LogPath for the given repository root, entry date,
// and same-day sequence number.
func NewLogPath(root, date string, seq int) LogPath {
	name := fmt.Sprintf("%s-%03d%s", date, seq, FileExt)
	return LogPath{
		path: filepath.Join(root, name),
		date: date,
		seq:  seq,
	}
}

// ParseLogPath parses the base name of path. It returns false for files
// that do not follow the devlog naming scheme.
func ParseLogPath(path string) (LogPath, bool) {
	m := logNameRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return LogPath{}, false
	}
	seq, err := strconv.Atoi(m[2])
	if err != nil {
		return LogPath{}, false
	}
	return LogPath{path: path, date: m[1], seq: seq}, true
}

// Path returns the file path.
func (p LogPath) Path() string { return p.path }

// Date returns the entry date encoded in the file name.
func (p LogPath) Date() string { return p.date }

// Seq returns the same-day sequence number encoded in the file name.
func (p LogPath) Seq() int { return p.seq }

// Before reports whether p is chronologically before q.
func (p LogPath) Before(q LogPath) bool {
	if p.date != q.date {
		return p.date < q.date
	}
	return p.seq < q.seq
}
