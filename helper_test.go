package compound

import (
	"math"
	"testing"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// near reports whether got is within ±0.01 of want.
func near(got Money, want float64) bool {
	return math.Abs(got.Float64()-want) <= 0.01+1e-9
}

// mustProject projects inv or fails the test.
func mustProject(t *testing.T, inv Investment) *Projection {
	t.Helper()
	p, err := Project(inv)
	if err != nil {
		t.Fatalf("Project(%+v) returned an unexpected error: %v", inv, err)
	}
	return p
}
