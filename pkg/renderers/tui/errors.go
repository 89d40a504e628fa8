package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoRegistry is returned when a session is run without widgets to edit.
	ErrNoRegistry = errors.New("tui: registry is nil")
)
