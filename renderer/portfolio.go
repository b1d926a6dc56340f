package renderer

import (
	"github.com/etnz/compound"
)

// PortfolioMarkdown renders one row per projected investment followed by
// the portfolio totals.
func PortfolioMarkdown(projections []*compound.Projection, totals compound.PortfolioTotals) string {
	var r markdown
	r.Printf("# Portfolio\n\n")

	if len(projections) == 0 {
		r.Printf("No investments.\n\n")
	} else {
		r.Printf("| Name | ID | Principal | Rate | Years | Frequency | Contributions | Interest | Projected Value |\n")
		r.Printf("|:---|:---|---:|---:|---:|:---|---:|---:|---:|\n")
		for _, p := range projections {
			inv := p.Investment
			r.Printf("| %s | %s | %s | %s | %g | %s | %s | %s | %s |\n",
				escape(inv.Name), escape(inv.ID), p.Principal, inv.AnnualRate, inv.Years, inv.Frequency,
				p.Contributions, p.Interest, p.Balance)
		}
		r.Printf("\n")
	}

	r.Printf("## Totals\n\n")
	r.Printf("| Total | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Investments | %d |\n", totals.Count)
	r.Printf("| Principal | %s |\n", totals.Principal)
	r.Printf("| Contributions | %s |\n", totals.Contributions)
	r.Printf("| Interest | %s |\n", totals.Interest)
	r.Printf("| Projected Value | %s |\n", totals.Value)
	r.Printf("| Nominal Rate | %s |\n", totals.NominalRate)
	r.Printf("| Effective Rate | %s |\n", totals.EffectiveRate)
	return r.String()
}
