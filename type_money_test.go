package compound

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1100), "$1,100.00"},
		{USD(0.5), "$0.50"},
		{M(1234567.891, "USD"), "$1,234,567.89"},
		{round(1268.2503, "USD"), "$1,268.25"},
		{USD(-1234.5), "-$1,234.50"},
		{USD(0), "$0.00"},
		{USD(999), "$999.00"},
		{M(decimal.RequireFromString("406561177535215040000"), "USD"), "$406,561,177,535,215,040,000.00"},
		{M(decimal.RequireFromString("-92233720368547758.08"), "USD"), "-$92,233,720,368,547,758.08"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoney_Round(t *testing.T) {
	if got := round(0.125, "USD"); !got.Equal(USD(0.13)) {
		t.Errorf("round(0.125) = %v, want 0.13", got.Decimal())
	}
	if got := round(99.994, "USD"); !got.Equal(USD(99.99)) {
		t.Errorf("round(99.994) = %v, want 99.99", got.Decimal())
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	var zero Money
	if got := zero.Add(USD(1)).Currency(); got != "USD" {
		t.Errorf("zero.Add(USD).Currency() = %q, want USD", got)
	}
}

func TestRatio(t *testing.T) {
	if got := ratio(USD(5), USD(20)); !got.Equal(25) {
		t.Errorf("ratio(5, 20) = %v, want 25%%", got)
	}
	if got := ratio(USD(5), Money{}); got != 0 {
		t.Errorf("ratio(5, 0) = %v, want 0", got)
	}
}

func TestMoney_StringLargeBalance(t *testing.T) {
	p := mustProject(t, Investment{Principal: 1000, AnnualRate: 50, Years: 100})
	got := p.Balance.String()
	if !strings.HasPrefix(got, "$") {
		t.Errorf("Balance.String() = %q, want a positive dollar amount", got)
	}
	if want := p.Balance.Decimal().StringFixed(0); strings.ReplaceAll(strings.TrimSuffix(strings.TrimPrefix(got, "$"), ".00"), ",", "") != want {
		t.Errorf("Balance.String() = %q, want the digits of %s", got, want)
	}
}
