package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/compound"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tables parses md and returns the number of body rows of each table, in order.
func tables(t *testing.T, md string) []int {
	t.Helper()
	source := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var rows []int
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case extast.KindTable:
			rows = append(rows, 0)
		case extast.KindTableRow:
			rows[len(rows)-1]++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return rows
}

func project(t *testing.T, inv compound.Investment) *compound.Projection {
	t.Helper()
	p, err := compound.Project(inv)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}
	return p
}

func TestProjectionMarkdown(t *testing.T) {
	p := project(t, compound.Investment{Name: "Savings", Principal: 1000, AnnualRate: 10, Years: 3, Frequency: compound.Yearly})
	md := ProjectionMarkdown(p)

	if !strings.HasPrefix(md, "# Savings\n") {
		t.Errorf("ProjectionMarkdown() should start with the investment name, got:\n%s", md)
	}
	// definition, schedule, totals
	if got, want := tables(t, md), []int{4, 3, 4}; !equal(got, want) {
		t.Errorf("table rows = %v, want %v\n%s", got, want, md)
	}
	for _, want := range []string{
		"| 1 | 1 | $1,000.00 | $0.00 | $100.00 | $1,100.00 |",
		"| 3 | 3 | $1,000.00 | $0.00 | $331.00 | $1,331.00 |",
		"| Projected Value | $1,331.00 |",
		"| Effective Rate | 33.10% |",
		"| Term | 3 years, yearly |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ProjectionMarkdown() is missing %q in:\n%s", want, md)
		}
	}
}

func TestProjectionMarkdown_ZeroTerm(t *testing.T) {
	p := project(t, compound.Investment{Principal: 50, Years: 0, Frequency: compound.Monthly, Contribution: 5})
	md := ProjectionMarkdown(p)
	if strings.Contains(md, "## Schedule") {
		t.Errorf("a projection without records should not render a schedule:\n%s", md)
	}
	if got, want := tables(t, md), []int{4, 4}; !equal(got, want) {
		t.Errorf("table rows = %v, want %v", got, want)
	}
	if !strings.Contains(md, "| Contribution | $5.00 per month |") {
		t.Errorf("ProjectionMarkdown() is missing the contribution:\n%s", md)
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	var projections []*compound.Projection
	for _, inv := range []compound.Investment{
		{ID: "a", Name: "Bonds | EU", Principal: 1000, AnnualRate: 10, Years: 1},
		{ID: "b", Name: "ETF", Principal: 1000, AnnualRate: 10, Years: 1},
	} {
		projections = append(projections, project(t, inv))
	}
	md := PortfolioMarkdown(projections, compound.Summarize(projections...))

	if got, want := tables(t, md), []int{2, 7}; !equal(got, want) {
		t.Errorf("table rows = %v, want %v\n%s", got, want, md)
	}
	for _, want := range []string{
		`| Bonds \| EU | a |`,
		"| Projected Value | $2,200.00 |",
		"| Nominal Rate | 20.00% |",
		"| Effective Rate | 10.00% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("PortfolioMarkdown() is missing %q in:\n%s", want, md)
		}
	}
}

func TestPortfolioMarkdown_Empty(t *testing.T) {
	md := PortfolioMarkdown(nil, compound.Summarize())
	if !strings.Contains(md, "No investments.") {
		t.Errorf("PortfolioMarkdown() should mention the empty portfolio:\n%s", md)
	}
	if !strings.Contains(md, "| Projected Value | $0.00 |") {
		t.Errorf("PortfolioMarkdown() should render zero totals:\n%s", md)
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
