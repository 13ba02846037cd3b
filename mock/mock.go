package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/rockcore/logging"
)

// Method names recorded in Call.Method.
const (
	MethodIsEnabled = "IsEnabled"
	MethodLog       = "Log"
)

// TestingT is the subset of *testing.T used to report strict-mode violations.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Config configures the mock logger.
type Config struct {
	// Level is the threshold at or above which IsEnabled reports true.
	// The zero value is logging.Debug.
	Level logging.LogLevel

	// T receives strict-mode violations through Fatalf. When nil, a violation
	// panics with a *ConfigurationError.
	T TestingT
}

// Call records a single invocation of the mock.
type Call struct {
	// Method is MethodIsEnabled or MethodLog.
	Method string
	// Level is the argument to IsEnabled, or the entry level for Log.
	Level logging.LogLevel
	// Entry is the entry passed to Log.
	Entry *logging.LogEntry
	// File, Member and Line are the caller location passed to Log.
	File   string
	Member string
	Line   int
}

// Counter reports how many recorded calls satisfy a predicate.
type Counter interface {
	Count(match func(Call) bool) int
}

// enabledSetup is one configured IsEnabled response, answering every level
// its predicate accepts.
type enabledSetup struct {
	match  func(logging.LogLevel) bool
	result bool
}

// Logger is a strict logging.Logger test double. It gates IsEnabled on a
// threshold level, records every call, and verifies Log calls on demand.
type Logger struct {
	mu         sync.Mutex
	level      logging.LogLevel
	t          TestingT
	enabled    []enabledSetup
	logErr     error
	calls      []Call
	violations []error
}

// Compile-time check: ensure Logger implements the logging.Logger and Counter interfaces.
var (
	_ logging.Logger = (*Logger)(nil)
	_ Counter        = (*Logger)(nil)
)

// New creates a mock logger with every level enabled.
func New() *Logger {
	return newLogger(logging.Debug, nil)
}

// NewWithLevel creates a mock logger that enables level and everything above it.
func NewWithLevel(level logging.LogLevel) (*Logger, error) {
	return NewWithConfig(Config{Level: level})
}

// NewWithConfig creates a mock logger from cfg.
func NewWithConfig(cfg Config) (*Logger, error) {
	if !cfg.Level.Valid() {
		return nil, &ConfigurationError{
			Op:  "New",
			Err: fmt.Errorf("%w: %s", logging.ErrInvalidLevel, cfg.Level),
		}
	}
	return newLogger(cfg.Level, cfg.T), nil
}

func newLogger(level logging.LogLevel, t TestingT) *Logger {
	return &Logger{
		level: level,
		t:     t,
		enabled: []enabledSetup{
			{match: func(l logging.LogLevel) bool { return l.Valid() && l >= level }, result: true},
			{match: func(l logging.LogLevel) bool { return l.Valid() && l < level }, result: false},
		},
		calls: []Call{},
	}
}

// Level returns the threshold the mock was created with.
func (m *Logger) Level() logging.LogLevel { return m.level }

// IsEnabled implements logging.Logger. Levels outside Debug through Audit have
// no configured response and are reported as strict-mode violations.
func (m *Logger) IsEnabled(level logging.LogLevel) bool {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: MethodIsEnabled, Level: level})
	for _, s := range m.enabled {
		if s.match(level) {
			m.mu.Unlock()
			return s.result
		}
	}

	err := &ConfigurationError{
		Op:  MethodIsEnabled,
		Err: fmt.Errorf("%w: %s(%s)", ErrUnexpectedCall, MethodIsEnabled, level),
	}
	m.violations = append(m.violations, err)
	m.mu.Unlock()

	m.fail(err)
	return false
}

// Log implements logging.Logger. It records the call and returns the
// configured result, nil unless OnLog says otherwise.
func (m *Logger) Log(_ context.Context, entry *logging.LogEntry, callerFile, callerMember string, callerLine int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := Call{
		Method: MethodLog,
		Entry:  entry,
		File:   callerFile,
		Member: callerMember,
		Line:   callerLine,
	}
	if entry != nil {
		call.Level = entry.Level
	}
	m.calls = append(m.calls, call)
	return m.logErr
}

func (m *Logger) fail(err error) {
	if m.t != nil {
		m.t.Helper()
		m.t.Fatalf("%v", err)
		return
	}
	panic(err)
}

// OnLog starts configuration of the Log response.
func (m *Logger) OnLog() *ResponseBuilder {
	return &ResponseBuilder{m: m}
}

// ResponseBuilder configures the result returned by Log.
type ResponseBuilder struct {
	m *Logger
}

// ReturnError makes subsequent Log calls return err. A nil err restores success.
func (b *ResponseBuilder) ReturnError(err error) *Logger {
	b.m.mu.Lock()
	b.m.logErr = err
	b.m.mu.Unlock()
	return b.m
}

// Count implements Counter over a snapshot of the call history.
func (m *Logger) Count(match func(Call) bool) int {
	n := 0
	for _, c := range m.Calls() {
		if match(c) {
			n++
		}
	}
	return n
}

// Calls returns a copy of the recorded call history.
func (m *Logger) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Entries returns the entries of every recorded Log call, in order.
func (m *Logger) Entries() []*logging.LogEntry {
	var entries []*logging.LogEntry
	for _, c := range m.Calls() {
		if c.Method == MethodLog {
			entries = append(entries, c.Entry)
		}
	}
	return entries
}

// Violations returns the strict-mode violations observed so far.
func (m *Logger) Violations() []error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]error(nil), m.violations...)
}

// Reset clears the call history and violations. The threshold and the
// configured Log response are kept.
func (m *Logger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = []Call{}
	m.violations = nil
}
