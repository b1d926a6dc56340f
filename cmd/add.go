package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	investmentFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an investment to the portfolio" }
func (*addCmd) Usage() string {
	return `invest add [-name <name>] -p <principal> -r <rate> -y <years> [-f <frequency>] [-c <contribution>]

  Appends an investment to the portfolio file, with a new unique id.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.investmentFlags.SetFlags(f)
	f.StringVar(&c.name, "name", "", "name of the investment")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := NewLogger()
	defer logger.Sync()

	inv := c.investment()
	if err := inv.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating investment: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	p, inv = p.Add(inv)
	if _, err := p.Totals(); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding investment: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeInvestment(inv); status != subcommands.ExitSuccess {
		return status
	}
	logger.Debug("investment added", zap.String("id", inv.ID), zap.String("file", *portfolioFile))
	fmt.Fprintf(stdout, "Successfully added investment %q (%s) to %s\n", inv.Name, inv.ID, *portfolioFile)
	return subcommands.ExitSuccess
}
