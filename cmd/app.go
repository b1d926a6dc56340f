// Package cmd implements the CLI application to project investments.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/compound"
	"github.com/etnz/compound/api"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&serveCmd{}, "server")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config = loadConfig()

var portfolioFile = flag.String("portfolio-file", config.PortfolioFile, "Path to the portfolio file containing investments (JSONL format)")
var defaultCurrency = flag.String("currency", config.DefaultCurrency, "Currency of investments that do not declare one")
var Verbose = flag.Bool("v", config.Verbose, "verbose logging on stderr")

// stdout receives the reports, tests replace it.
var stdout io.Writer = os.Stdout

// NewLogger returns the application logger, at debug level in verbose mode.
func NewLogger() *zap.Logger {
	return api.NewLogger(*Verbose)
}

// DecodePortfolio loads the app portfolio file.
// A missing file is an empty portfolio.
func DecodePortfolio() (compound.Portfolio, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		return compound.NewPortfolio(), nil
	}
	if err != nil {
		return compound.Portfolio{}, err
	}
	defer f.Close()
	return compound.DecodePortfolio(f)
}

// EncodePortfolio rewrites the app portfolio file with p.
func EncodePortfolio(p compound.Portfolio) error {
	f, err := os.Create(*portfolioFile)
	if err != nil {
		return err
	}
	if err := compound.EncodePortfolio(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EncodeInvestment appends a single investment into the app portfolio file.
func EncodeInvestment(inv compound.Investment) subcommands.ExitStatus {
	filename := *portfolioFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := compound.EncodeInvestment(f, inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to portfolio file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
