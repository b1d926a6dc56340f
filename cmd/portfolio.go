package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	json     bool
	selector string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display every investment of the portfolio and their totals" }
func (*portfolioCmd) Usage() string {
	return `invest portfolio [-json] [-select <jsonpath>]

  Projects every investment of the portfolio file and displays them with the
  portfolio totals.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the projections and totals as JSON")
	f.StringVar(&c.selector, "select", "", "print only the part of the JSON output matching this jsonpath (implies -json)")
}

// portfolioReport is the JSON output of the portfolio command.
type portfolioReport struct {
	Projections []*compound.Projection   `json:"projections"`
	Totals      compound.PortfolioTotals `json:"totals"`
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := NewLogger()
	defer logger.Sync()

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("portfolio loaded", zap.String("file", *portfolioFile), zap.Int("investments", p.Len()))

	projections, err := p.Projections()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	totals := compound.Summarize(projections...)

	if c.json || c.selector != "" {
		report := portfolioReport{Projections: projections, Totals: totals}
		if err := printJSON(stdout, report, c.selector); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PortfolioMarkdown(projections, totals))
	return subcommands.ExitSuccess
}
