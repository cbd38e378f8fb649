package types

// Task statuses. The status of a task is determined by the single marker
// character at the start of its line.
const (
	StatusToDo    = "todo"
	StatusStarted = "started"
	StatusBlocked = "blocked"
	StatusDone    = "done"
)

// AllStatuses lists the task statuses in display order.
var AllStatuses = []string{StatusToDo, StatusStarted, StatusBlocked, StatusDone}

// validStatuses is the set of recognized task status values.
var validStatuses = map[string]bool{
	StatusToDo:    true,
	StatusStarted: true,
	StatusBlocked: true,
	StatusDone:    true,
}

// markerToStatus maps a line-initial marker character to a task status.
// Any line starting with another character is commentary, not a task.
var markerToStatus = map[byte]string{
	'*': StatusToDo,
	'^': StatusStarted,
	'-': StatusBlocked,
	'+': StatusDone,
}

// statusToMarker is the inverse of markerToStatus, used to re-render tasks.
var statusToMarker = map[string]byte{
	StatusToDo:    '*',
	StatusStarted: '^',
	StatusBlocked: '-',
	StatusDone:    '+',
}

// ValidStatus reports whether s is a recognized task status value.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// StatusLabel returns the section heading used when rendering a group of
// tasks with the given status.
func StatusLabel(status string) string {
	switch status {
	case StatusToDo:
		return "To Do"
	case StatusStarted:
		return "Started"
	case StatusBlocked:
		return "Blocked"
	case StatusDone:
		return "Done"
	default:
		return status
	}
}

// Task is a single parsed devlog line.
type Task struct {
	Status string // one of the Status constants
	Text   string // remainder of the line after the marker, exactly as written
}

// ParseTask classifies a single line of a devlog file. It returns the
// parsed task and true when the line starts with a marker character.
// Blank lines and free-text commentary return false; parsing never fails.
//
// The marker must be the first byte of the line. Text is everything after
// the marker with no trimming, so Render reproduces the line exactly.
func ParseTask(line string) (Task, bool) {
	if line == "" {
		return Task{}, false
	}
	status, ok := markerToStatus[line[0]]
	if !ok {
		return Task{}, false
	}
	return Task{Status: status, Text: line[1:]}, true
}

// Marker returns the marker character for the task's status.
func (t Task) Marker() string {
	return string(statusToMarker[t.Status])
}

// Render returns the task's source line: the marker followed by the text.
func (t Task) Render() string {
	return t.Marker() + t.Text
}
