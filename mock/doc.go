/*
Package mock provides a strict, recording implementation of logging.Logger for
tests.

The mock answers IsEnabled from a threshold level fixed at construction, accepts
every Log call without doing any I/O, and keeps the full call history so tests
can assert what was logged and how often.

# Basic Usage

	func TestSomething(t *testing.T) {
		m := mock.New()
		svc := NewService(m)

		svc.Run(context.Background())

		if err := m.VerifyLog(); err != nil {
			t.Fatal(err)
		}
	}

# Gating

NewWithLevel sets the threshold; IsEnabled reports true for that level and
everything above it. Levels outside Debug through Audit are rejected at
construction, and an IsEnabled call with one is a strict-mode violation that
fails the test through Config.T or panics.

	m, err := mock.NewWithLevel(logging.Warn)
	m.IsEnabled(logging.Info)  // false
	m.IsEnabled(logging.Error) // true

# Verifying

VerifyLog takes options that narrow the predicate, the expected count and the
failure text:

	m.VerifyLog()
	m.VerifyLog(mock.WithTimes(mock.Exactly(3)))
	m.VerifyLog(
		mock.Matching(func(e *logging.LogEntry) bool { return strings.HasPrefix(e.Message, "foo") }),
		mock.WithTimes(mock.Exactly(2)),
		mock.WithMessage("expected two foo entries"),
	)

Failures are *VerificationError values; errors.Is(err, mock.ErrVerificationFailed)
holds and the message starts with the WithMessage text.

# Overriding Behavior

	m.OnLog().ReturnError(errors.New("disk full"))

# Inspecting Calls

	for _, c := range m.Calls() {
		// c.Method, c.Level, c.Entry, c.File, c.Member, c.Line
	}
*/
package mock
