package compound

import (
	"fmt"
	"math"
)

// PeriodRecord is the state of an investment at a year boundary.
type PeriodRecord struct {
	Period        int   // elapsed periods
	Year          int   // elapsed years, starting at 1
	Principal     Money // initial capital, unchanged
	Contributions Money // cumulative contributions
	Interest      Money // cumulative interest
	Balance       Money
}

// Projection is the growth of an investment over its horizon.
type Projection struct {
	Investment Investment
	Records    []PeriodRecord // one per elapsed year

	// Final state, after the last period. It differs from the last record
	// when the horizon ends within a year.
	Principal     Money
	Contributions Money
	Interest      Money
	Balance       Money
}

// Project validates inv and computes its year by year growth.
//
// Each period, interest is credited on the balance first, then the
// contribution is paid: a contribution starts earning interest the period
// after it is paid. Accumulation is unrounded, amounts are rounded to two
// decimals when they are recorded.
func Project(inv Investment) (*Projection, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	cur := inv.currencyOrDefault()
	perYear := inv.Frequency.PeriodsPerYear()
	rate := inv.AnnualRate.fraction() / float64(perYear)
	periods := inv.Periods()

	principal := round(inv.Principal, cur)
	snapshot := func(period int, contributions, interest, balance float64) PeriodRecord {
		return PeriodRecord{
			Period:        period,
			Year:          period / perYear,
			Principal:     principal,
			Contributions: round(contributions, cur),
			Interest:      round(interest, cur),
			Balance:       round(balance, cur),
		}
	}

	records := make([]PeriodRecord, 0, periods/perYear)
	balance := inv.Principal
	var contributions, interest float64
	for i := 1; i <= periods; i++ {
		earned := balance * rate
		interest += earned
		balance += earned

		contributions += inv.Contribution
		balance += inv.Contribution

		if math.IsInf(balance, 0) {
			return nil, &InvalidParameterError{Field: "rate", Reason: fmt.Sprintf("balance overflows after %d periods", i)}
		}
		if i%perYear == 0 {
			records = append(records, snapshot(i, contributions, interest, balance))
		}
	}

	final := snapshot(periods, contributions, interest, balance)
	return &Projection{
		Investment:    inv,
		Records:       records,
		Principal:     final.Principal,
		Contributions: final.Contributions,
		Interest:      final.Interest,
		Balance:       final.Balance,
	}, nil
}

// Currency returns the currency of every amount in the projection.
func (p *Projection) Currency() string { return p.Balance.Currency() }

// Invested returns the capital put in: principal plus contributions.
func (p *Projection) Invested() Money { return p.Principal.Add(p.Contributions) }

// EffectiveRate returns the total interest over the invested capital.
func (p *Projection) EffectiveRate() Percent { return ratio(p.Interest, p.Invested()) }

// MarshalJSON writes the projection with its final state and effective rate.
func (p *Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("investment", p.Investment)
	w.Append("currency", p.Currency())
	w.Append("records", p.Records)
	w.Append("principal", p.Principal)
	w.Append("contributions", p.Contributions)
	w.Append("interest", p.Interest)
	w.Append("balance", p.Balance)
	w.Append("effectiveRate", float64(p.EffectiveRate()))
	return w.MarshalJSON()
}

func (r PeriodRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("period", r.Period)
	w.Append("year", r.Year)
	w.Append("principal", r.Principal)
	w.Append("contributions", r.Contributions)
	w.Append("interest", r.Interest)
	w.Append("balance", r.Balance)
	return w.MarshalJSON()
}
