package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove investments from the portfolio" }
func (*removeCmd) Usage() string {
	return `invest remove <id>...

  Removes the investments with these ids from the portfolio file.
  Nothing is removed if one of the ids is unknown.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one investment id is required")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		var ok bool
		if p, ok = p.Remove(id); !ok {
			fmt.Fprintf(os.Stderr, "Error: no investment %q in %s\n", id, *portfolioFile)
			return subcommands.ExitFailure
		}
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully removed %d investment(s) from %s\n", f.NArg(), *portfolioFile)
	return subcommands.ExitSuccess
}
