package logging

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// Logger is the leveled logging capability consumed by application code.
type Logger interface {
	// IsEnabled reports whether entries at level would be written.
	IsEnabled(level LogLevel) bool

	// Log writes entry and blocks until the write completes or ctx is done.
	// The caller location is passed along for diagnostics.
	Log(ctx context.Context, entry *LogEntry, callerFile, callerMember string, callerLine int) error
}

// Log writes message at level through l when the level is enabled.
func Log(ctx context.Context, l Logger, level LogLevel, message string) error {
	return write(ctx, l, NewEntry(level, message), false)
}

// Logf is Log with fmt.Sprintf formatting of the message.
func Logf(ctx context.Context, l Logger, level LogLevel, format string, args ...any) error {
	if l == nil {
		return ErrNilLogger
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidLevel, level)
	}
	if !l.IsEnabled(level) {
		return nil
	}
	return write(ctx, l, NewEntry(level, fmt.Sprintf(format, args...)), true)
}

// Write sends a prepared entry through l when its level is enabled.
func Write(ctx context.Context, l Logger, entry *LogEntry) error {
	if entry == nil {
		return ErrNilEntry
	}
	return write(ctx, l, entry, false)
}

// write must be called directly from an exported helper so the caller
// lookup lands on the application frame. enabled skips the IsEnabled check
// when the helper already performed it.
func write(ctx context.Context, l Logger, entry *LogEntry, enabled bool) error {
	if !enabled {
		if l == nil {
			return ErrNilLogger
		}
		if !entry.Level.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidLevel, entry.Level)
		}
		if !l.IsEnabled(entry.Level) {
			return nil
		}
	}

	file, member, line := caller(2)
	return l.Log(ctx, entry, file, member, line)
}

// caller resolves the file, function name and line skip frames above its caller.
func caller(skip int) (string, string, int) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", "", 0
	}

	member := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		member = fn.Name()
		if i := strings.LastIndex(member, "."); i >= 0 {
			member = member[i+1:]
		}
	}
	return file, member, line
}
