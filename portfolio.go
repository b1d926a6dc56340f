package compound

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// PortfolioTotals sums the projections of several investments.
type PortfolioTotals struct {
	Count         int
	Principal     Money
	Contributions Money
	Interest      Money
	Value         Money   // total projected value
	NominalRate   Percent // sum of the nominal annual rates
	EffectiveRate Percent // Interest over Principal plus Contributions
}

// Invested returns the total capital put in.
func (t PortfolioTotals) Invested() Money { return t.Principal.Add(t.Contributions) }

// Aggregate projects every investment and sums the results.
// Investments must share a currency, empty currencies excepted.
func Aggregate(invs []Investment) (PortfolioTotals, error) {
	projections, err := ProjectAll(invs)
	if err != nil {
		return PortfolioTotals{}, err
	}
	return Summarize(projections...), nil
}

// ProjectAll projects every investment, failing on the first invalid one.
func ProjectAll(invs []Investment) ([]*Projection, error) {
	return ProjectAllFunc(invs, Project)
}

// ProjectAllFunc is ProjectAll with project computing each projection,
// e.g. to serve them from a cache.
func ProjectAllFunc(invs []Investment, project func(Investment) (*Projection, error)) ([]*Projection, error) {
	projections := make([]*Projection, 0, len(invs))
	for i, inv := range invs {
		p, err := project(inv)
		if err != nil {
			return nil, fmt.Errorf("investment #%d %q: %w", i+1, inv.Name, err)
		}
		if len(projections) > 0 && projections[0].Currency() != p.Currency() {
			return nil, fmt.Errorf("investment #%d %q: %w", i+1, inv.Name, &InvalidParameterError{
				Field:  "currency",
				Reason: fmt.Sprintf("%s does not match the portfolio currency %s", p.Currency(), projections[0].Currency()),
			})
		}
		projections = append(projections, p)
	}
	return projections, nil
}

// Summarize reduces projections to their totals. Projections must share a currency.
func Summarize(projections ...*Projection) PortfolioTotals {
	var t PortfolioTotals
	for _, p := range projections {
		t.Count++
		t.Principal = t.Principal.Add(p.Principal)
		t.Contributions = t.Contributions.Add(p.Contributions)
		t.Interest = t.Interest.Add(p.Interest)
		t.Value = t.Value.Add(p.Balance)
		t.NominalRate += p.Investment.AnnualRate
	}
	t.EffectiveRate = ratio(t.Interest, t.Invested())
	return t
}

func (t PortfolioTotals) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("count", t.Count)
	w.Optional("currency", t.Value.Currency())
	w.Append("principal", t.Principal)
	w.Append("contributions", t.Contributions)
	w.Append("interest", t.Interest)
	w.Append("value", t.Value)
	w.Append("nominalRate", float64(t.NominalRate))
	w.Append("effectiveRate", float64(t.EffectiveRate))
	return w.MarshalJSON()
}

// Portfolio is an ordered collection of investments.
// It is a value: Add and Remove return a new Portfolio.
type Portfolio struct {
	investments []Investment
}

// NewPortfolio returns a portfolio holding invs, in order.
func NewPortfolio(invs ...Investment) Portfolio {
	return Portfolio{investments: slices.Clone(invs)}
}

// Len returns the number of investments.
func (p Portfolio) Len() int { return len(p.investments) }

// Investments returns a copy of the portfolio investments.
func (p Portfolio) Investments() []Investment { return slices.Clone(p.investments) }

// Lookup returns the investment with the given id.
func (p Portfolio) Lookup(id string) (Investment, bool) {
	i := slices.IndexFunc(p.investments, func(inv Investment) bool { return inv.ID == id })
	if i < 0 {
		return Investment{}, false
	}
	return p.investments[i], true
}

// Add returns a portfolio with inv appended, and inv as stored: with a
// new id if it had none and DefaultName if it had no name.
func (p Portfolio) Add(inv Investment) (Portfolio, Investment) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.Name == "" {
		inv.Name = DefaultName
	}
	invs := make([]Investment, 0, len(p.investments)+1)
	invs = append(invs, p.investments...)
	invs = append(invs, inv)
	return Portfolio{investments: invs}, inv
}

// Remove returns a portfolio without the investment with the given id, and
// whether one was removed.
func (p Portfolio) Remove(id string) (Portfolio, bool) {
	invs := slices.DeleteFunc(slices.Clone(p.investments), func(inv Investment) bool { return inv.ID == id })
	return Portfolio{investments: invs}, len(invs) != len(p.investments)
}

// Projections projects every investment of the portfolio.
func (p Portfolio) Projections() ([]*Projection, error) { return ProjectAll(p.investments) }

// Totals aggregates the portfolio.
func (p Portfolio) Totals() (PortfolioTotals, error) { return Aggregate(p.investments) }
