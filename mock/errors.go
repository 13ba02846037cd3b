package mock

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is the kind shared by every ConfigurationError.
	ErrConfiguration = errors.New("mock configuration error")

	// ErrUnexpectedCall is the cause recorded when a call has no configured response.
	ErrUnexpectedCall = errors.New("invocation has no corresponding setup")

	// ErrVerificationFailed is the kind shared by every VerificationError.
	ErrVerificationFailed = errors.New("mock verification failed")
)

// ConfigurationError reports a misuse of the mock: a rejected construction
// argument or a call the mock was not configured to answer.
type ConfigurationError struct {
	// Op names the constructor or method that failed.
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mock: %s: %v", e.Op, e.Err)
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// VerificationError reports that the recorded calls did not satisfy an
// expectation. When a failure message was supplied, Error starts with it.
type VerificationError struct {
	// Message is the caller supplied failure message, possibly empty.
	Message string
	// Method is the verified method name.
	Method string
	// Expected is the cardinality that was required.
	Expected Times
	// Matched is how many recorded calls satisfied the predicate.
	Matched int
	// Total is how many calls to Method were recorded.
	Total int
}

func (e *VerificationError) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	expected := "be called " + e.Expected.String()
	if e.Expected == Never() {
		expected = "never be called"
	}
	fmt.Fprintf(&b, "expected %s to %s, but it was %s (%d %s call(s) recorded)",
		e.Method, expected, calledTimes(e.Matched), e.Total, e.Method)
	return b.String()
}

// Is matches ErrVerificationFailed.
func (e *VerificationError) Is(target error) bool { return target == ErrVerificationFailed }

func calledTimes(n int) string {
	switch n {
	case 0:
		return "never called"
	case 1:
		return "called once"
	default:
		return fmt.Sprintf("called %d times", n)
	}
}
