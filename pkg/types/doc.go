// Package types defines the task model, the marker grammar, and the
// standard errors shared by the devlog engines and CLI.
package types
