package mock

import "github.com/rockcore/logging"

// Match decides whether a recorded entry satisfies a verification.
type Match func(entry *logging.LogEntry) bool

// VerifyOption narrows a verification.
type VerifyOption func(*verification)

type verification struct {
	match   Match
	times   Times
	message string
}

// Matching restricts verification to entries accepted by match. Nil entries
// never satisfy a custom predicate.
func Matching(match Match) VerifyOption {
	return func(v *verification) { v.match = match }
}

// WithTimes sets the expected number of matching calls. Default AtLeastOnce.
func WithTimes(t Times) VerifyOption {
	return func(v *verification) { v.times = t }
}

// WithMessage sets the text a failure's message starts with.
func WithMessage(msg string) VerifyOption {
	return func(v *verification) { v.message = msg }
}

func newVerification(opts []VerifyOption) verification {
	v := verification{times: AtLeastOnce()}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

func (v verification) accepts(entry *logging.LogEntry) bool {
	if v.match == nil {
		return true
	}
	return entry != nil && v.match(entry)
}

// VerifyLog checks the recorded Log calls. With no options it passes when Log
// was called at least once. Matching, WithTimes and WithMessage narrow the
// predicate, the expected count and the failure text. A failure is a
// *VerificationError matching ErrVerificationFailed.
func (m *Logger) VerifyLog(opts ...VerifyOption) error {
	v := newVerification(opts)
	return verify(m, MethodLog, func(c Call) bool { return v.accepts(c.Entry) }, v)
}

// VerifyIsEnabled checks how many times IsEnabled was called with level.
// Matching is ignored since IsEnabled carries no entry.
func (m *Logger) VerifyIsEnabled(level logging.LogLevel, opts ...VerifyOption) error {
	v := newVerification(opts)
	return verify(m, MethodIsEnabled, func(c Call) bool { return c.Level == level }, v)
}

func verify(c Counter, method string, match func(Call) bool, v verification) error {
	total, matched := 0, 0
	c.Count(func(call Call) bool {
		if call.Method != method {
			return false
		}
		total++
		if match(call) {
			matched++
		}
		return false
	})
	if v.times.Verify(matched) {
		return nil
	}

	return &VerificationError{
		Message:  v.message,
		Method:   method,
		Expected: v.times,
		Matched:  matched,
		Total:    total,
	}
}
