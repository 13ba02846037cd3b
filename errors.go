package logging

import "errors"

var (
	// ErrInvalidLevel indicates a LogLevel outside Debug through Audit.
	ErrInvalidLevel = errors.New("log level is invalid")

	// ErrNilLogger is returned by the helpers when no Logger is supplied.
	ErrNilLogger = errors.New("logger cannot be nil")

	// ErrNilEntry is returned when a Logger is asked to write a nil entry.
	ErrNilEntry = errors.New("log entry cannot be nil")
)
