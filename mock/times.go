package mock

import "fmt"

// Times is a cardinality constraint over a non-negative call count. It is a
// closed range [min, max], or [min, ∞) when unbounded.
type Times struct {
	min       int
	max       int
	unbounded bool
}

// Exactly expects n calls.
func Exactly(n int) Times {
	n = clamp(n)
	return Times{min: n, max: n}
}

// AtLeast expects n or more calls.
func AtLeast(n int) Times {
	return Times{min: clamp(n), unbounded: true}
}

// AtMost expects at most n calls.
func AtMost(n int) Times {
	return Times{min: 0, max: clamp(n)}
}

// Between expects between n and m calls inclusive. Reversed bounds are swapped.
func Between(n, m int) Times {
	n, m = clamp(n), clamp(m)
	if n > m {
		n, m = m, n
	}
	return Times{min: n, max: m}
}

// Never expects no calls.
func Never() Times { return Exactly(0) }

// Once expects exactly one call.
func Once() Times { return Exactly(1) }

// AtLeastOnce expects one or more calls.
func AtLeastOnce() Times { return AtLeast(1) }

// Verify reports whether count satisfies the constraint.
func (t Times) Verify(count int) bool {
	if count < t.min {
		return false
	}
	return t.unbounded || count <= t.max
}

func (t Times) String() string {
	switch {
	case t.unbounded && t.min == 0:
		return "any number of times"
	case t.unbounded && t.min == 1:
		return "at least once"
	case t.unbounded:
		return fmt.Sprintf("at least %d times", t.min)
	case t.min == t.max && t.min == 0:
		return "never"
	case t.min == t.max && t.min == 1:
		return "exactly once"
	case t.min == t.max:
		return fmt.Sprintf("exactly %d times", t.min)
	case t.min == 0:
		return fmt.Sprintf("at most %d times", t.max)
	default:
		return fmt.Sprintf("between %d and %d times", t.min, t.max)
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
