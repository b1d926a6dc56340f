package compound

import (
	"errors"
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// DefaultName is given to investments added without a name.
const DefaultName = "My new investment"

// MaxPeriods is the longest horizon that can be projected, in periods:
// two centuries of daily periods.
const MaxPeriods = 200 * 365

// Investment defines what is projected: an initial capital growing at a
// nominal annual rate, with a recurring contribution paid every period.
type Investment struct {
	ID           string
	Name         string
	Principal    float64   // initial capital
	AnnualRate   Percent   // nominal annual rate
	Years        float64   // horizon, truncated to whole periods
	Frequency    Frequency // compounding and contribution period
	Contribution float64   // paid at the end of every period
	Currency     string    // empty for DefaultCurrency
}

// currencyOrDefault returns the investment's currency.
func (inv Investment) currencyOrDefault() string {
	if inv.Currency == "" {
		return DefaultCurrency
	}
	return inv.Currency
}

// horizon returns the unrounded number of periods in the horizon.
func (inv Investment) horizon() float64 {
	return inv.Years * float64(inv.Frequency.PeriodsPerYear())
}

// Periods returns the number of compounding periods in the horizon.
// It saturates at MaxPeriods+1 for horizons that Validate rejects.
func (inv Investment) Periods() int {
	n := math.Floor(inv.horizon())
	switch {
	case math.IsNaN(n) || n < 0:
		return 0
	case n > MaxPeriods:
		return MaxPeriods + 1
	}
	return int(n)
}

// Validate returns nil if the investment can be projected, or the joined
// InvalidParameterError of every offending field.
func (inv Investment) Validate() error {
	var errs []error
	check := func(field string, v float64) bool {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, &InvalidParameterError{Field: field, Reason: "must be a finite number"})
		case v < 0:
			errs = append(errs, &InvalidParameterError{Field: field, Reason: fmt.Sprintf("must not be negative, got %v", v)})
		default:
			return true
		}
		return false
	}
	check("principal", inv.Principal)
	check("rate", float64(inv.AnnualRate))
	years := check("years", inv.Years)
	frequency := inv.Frequency.Valid()
	if !frequency {
		errs = append(errs, &InvalidParameterError{Field: "frequency", Reason: fmt.Sprintf("unknown frequency %d", int(inv.Frequency))})
	}
	if years && frequency && inv.horizon() >= MaxPeriods+1 {
		errs = append(errs, &InvalidParameterError{
			Field:  "years",
			Reason: fmt.Sprintf("%v years %s exceed the limit of %d periods", inv.Years, inv.Frequency, MaxPeriods),
		})
	}
	check("contribution", inv.Contribution)
	return errors.Join(errs...)
}

// investmentJSON is the wire form, used for decoding only.
type investmentJSON struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Principal    float64   `json:"principal"`
	Currency     string    `json:"currency"`
	Rate         float64   `json:"rate"`
	Years        float64   `json:"years"`
	Frequency    Frequency `json:"frequency"`
	Contribution float64   `json:"contribution"`
}

// MarshalJSON writes the investment in the canonical field order.
func (inv Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", inv.ID)
	w.Optional("name", inv.Name)
	w.Append("principal", inv.Principal)
	w.Optional("currency", inv.Currency)
	w.Append("rate", float64(inv.AnnualRate))
	w.Append("years", inv.Years)
	w.Append("frequency", inv.Frequency)
	w.Optional("contribution", inv.Contribution)
	return w.MarshalJSON()
}

func (inv *Investment) UnmarshalJSON(data []byte) error {
	var v investmentJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*inv = Investment{
		ID:           v.ID,
		Name:         v.Name,
		Principal:    v.Principal,
		AnnualRate:   Percent(v.Rate),
		Years:        v.Years,
		Frequency:    v.Frequency,
		Contribution: v.Contribution,
		Currency:     v.Currency,
	}
	return nil
}
