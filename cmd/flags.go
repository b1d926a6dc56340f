package cmd

import (
	"flag"

	"github.com/etnz/compound"
)

// investmentFlags are the flags defining an investment.
type investmentFlags struct {
	name         string
	principal    float64
	rate         float64
	years        float64
	frequency    compound.Frequency
	contribution float64
	currency     string
}

func (c *investmentFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "p", 0, "initial capital")
	f.Float64Var(&c.rate, "r", 0, "nominal annual interest rate in percent (7 means 7%)")
	f.Float64Var(&c.years, "y", 0, "horizon in years, fractions are truncated to whole periods")
	f.Var(&c.frequency, "f", "compounding and contribution frequency: yearly, monthly, weekly or daily")
	f.Float64Var(&c.contribution, "c", 0, "contribution paid at the end of every period")
	f.StringVar(&c.currency, "currency", "", "currency of the investment (defaults to the global -currency flag)")
}

// investment returns the investment defined by the flags.
func (c *investmentFlags) investment() compound.Investment {
	cur := c.currency
	if cur == "" {
		cur = *defaultCurrency
	}
	return compound.Investment{
		Name:         c.name,
		Principal:    c.principal,
		AnnualRate:   compound.Percent(c.rate),
		Years:        c.years,
		Frequency:    c.frequency,
		Contribution: c.contribution,
		Currency:     cur,
	}
}
