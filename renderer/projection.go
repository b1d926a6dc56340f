package renderer

import (
	"io"

	"github.com/etnz/compound"
)

// ProjectionMarkdown renders the definition, the year by year schedule and
// the totals of a projection.
func ProjectionMarkdown(p *compound.Projection) string {
	var r markdown
	inv := p.Investment

	title := inv.Name
	if title == "" {
		title = "Projection"
	}
	r.Printf("# %s\n\n", title)

	r.Printf("| Parameter | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Principal | %s |\n", p.Principal)
	r.Printf("| Annual Rate | %s |\n", inv.AnnualRate)
	r.Printf("| Term | %s, %s |\n", plural(inv.Years, "year"), inv.Frequency)
	r.Printf("| Contribution | %s per %s |\n", compound.M(inv.Contribution, p.Currency()), inv.Frequency.Name())
	r.Printf("\n")

	ConditionalBlock(&r, func(w io.Writer) bool {
		renderSchedule(w, p.Records)
		return len(p.Records) > 0
	})

	r.Printf("## Totals\n\n")
	r.Printf("| Total | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Invested | %s |\n", p.Invested())
	r.Printf("| Interest | %s |\n", p.Interest)
	r.Printf("| Projected Value | %s |\n", p.Balance)
	r.Printf("| Effective Rate | %s |\n", p.EffectiveRate())
	return r.String()
}

func renderSchedule(w io.Writer, records []compound.PeriodRecord) {
	r := &markdown{}
	r.Printf("## Schedule\n\n")
	r.Printf("| Year | Period | Principal | Contributions | Interest | Balance |\n")
	r.Printf("|---:|---:|---:|---:|---:|---:|\n")
	for _, rec := range records {
		r.Printf("| %d | %d | %s | %s | %s | %s |\n", rec.Year, rec.Period, rec.Principal, rec.Contributions, rec.Interest, rec.Balance)
	}
	r.Printf("\n")
	io.WriteString(w, r.String())
}
