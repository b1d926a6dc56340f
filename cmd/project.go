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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	investmentFlags
	json     bool
	selector string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the growth of a single investment" }
func (*projectCmd) Usage() string {
	return `invest project -p <principal> -r <rate> -y <years> [-f <frequency>] [-c <contribution>] [-json] [-select <jsonpath>]

  Projects an investment year by year, and displays its schedule and totals.
  See 'invest topic projection' for the details of the computation.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.investmentFlags.SetFlags(f)
	f.StringVar(&c.name, "name", "", "name of the investment in the report")
	f.BoolVar(&c.json, "json", false, "print the projection as JSON")
	f.StringVar(&c.selector, "select", "", "print only the part of the JSON projection matching this jsonpath (implies -json)")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := NewLogger()
	defer logger.Sync()

	inv := c.investment()
	p, err := compound.Project(inv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting investment: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger.Debug("projected investment",
		zap.Int("periods", inv.Periods()),
		zap.Int("records", len(p.Records)),
		zap.Stringer("balance", p.Balance),
	)

	if c.json || c.selector != "" {
		if err := printJSON(stdout, p, c.selector); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing projection: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ProjectionMarkdown(p))
	return subcommands.ExitSuccess
}
