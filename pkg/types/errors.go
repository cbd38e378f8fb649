package types

import "errors"

// Repository errors.
var (
	ErrNotInitialized       = errors.New("repository not initialized")
	ErrNoLogFile            = errors.New("no devlog file found")
	ErrLogFileLimitExceeded = errors.New("too many devlog files for one day")
)

// Status query errors.
var (
	ErrBackTooFar = errors.New("back offset exceeds available devlog files")
)
