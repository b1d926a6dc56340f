package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/compound/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Answers shell completion requests and exits, does nothing otherwise.
	completion().Complete("invest")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		logger := cmd.NewLogger()
		found, code := cmd.RunExtension(logger, name, flag.Args()[1:])
		logger.Sync()
		if found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	frequencies := predict.Set{"yearly", "monthly", "weekly", "daily"}
	investment := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := map[string]complete.Predictor{
			"name":     predict.Something,
			"p":        predict.Something,
			"r":        predict.Something,
			"y":        predict.Something,
			"f":        frequencies,
			"c":        predict.Something,
			"currency": predict.Something,
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}
	output := map[string]complete.Predictor{
		"json":   predict.Nothing,
		"select": predict.Something,
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"project":   {Flags: investment(output)},
			"add":       {Flags: investment(nil)},
			"portfolio": {Flags: output},
			"remove":    {Args: predict.Something},
			"serve": {Flags: map[string]complete.Predictor{
				"addr":      predict.Something,
				"cache-ttl": predict.Something,
			}},
			"topic":    {Args: predict.Set{"readme", "projection", "frequency", "portfolio", "serve", "*"}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.jsonl"),
			"currency":       predict.Something,
			"v":              predict.Nothing,
		},
	}
}
