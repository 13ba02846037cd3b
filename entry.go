package logging

import "time"

// LogEntry is a single log record handed to a Logger.
type LogEntry struct {
	// Message is the human readable text of the entry.
	Message string

	// Level is the severity the entry was written at.
	Level LogLevel

	// CreateTime is when the entry was created.
	CreateTime time.Time

	// Fields carries extended properties attached by the caller.
	Fields map[string]any

	// Err is an optional error associated with the entry.
	Err error

	// Tags are free-form labels used for routing or filtering.
	Tags []string
}

// NewEntry creates an entry for level and message stamped with the current time.
func NewEntry(level LogLevel, message string) *LogEntry {
	return &LogEntry{
		Message:    message,
		Level:      level,
		CreateTime: time.Now(),
	}
}

// WithField sets a single extended property and returns the entry.
func (e *LogEntry) WithField(key string, value any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}
