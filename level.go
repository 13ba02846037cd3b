package logging

import (
	"fmt"
	"strings"
)

// LogLevel classifies the severity of a log entry. Levels are totally ordered
// and compared numerically: Debug < Info < Warn < Error < Fatal < Audit.
type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
	Fatal
	Audit
)

var levelNames = [...]string{
	Debug: "Debug",
	Info:  "Info",
	Warn:  "Warn",
	Error: "Error",
	Fatal: "Fatal",
	Audit: "Audit",
}

// Levels returns every recognized level, least severe first.
func Levels() []LogLevel {
	return []LogLevel{Debug, Info, Warn, Error, Fatal, Audit}
}

// Valid reports whether l is one of the recognized levels.
func (l LogLevel) Valid() bool {
	return l >= Debug && l <= Audit
}

func (l LogLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level named by s, ignoring case.
func ParseLevel(s string) (LogLevel, error) {
	for _, l := range Levels() {
		if strings.EqualFold(s, levelNames[l]) {
			return l, nil
		}
	}
	return Debug, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
