package bounds

import "math"

// Feastol is the feasibility tolerance: bound values closer than this are
// treated as equal by every comparison in the package.
const Feastol = 1e-9

// Eq reports a == b within Feastol. Equal infinities compare equal.
func Eq(a, b float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= Feastol
}

// Lt reports a < b by more than Feastol.
func Lt(a, b float64) bool { return b-a > Feastol }

// Gt reports a > b by more than Feastol.
func Gt(a, b float64) bool { return a-b > Feastol }

// Le reports a <= b within Feastol.
func Le(a, b float64) bool { return !Gt(a, b) }

// Ge reports a >= b within Feastol.
func Ge(a, b float64) bool { return !Lt(a, b) }

// IsInfinite reports whether x is +Inf or -Inf.
func IsInfinite(x float64) bool { return math.IsInf(x, 0) }
