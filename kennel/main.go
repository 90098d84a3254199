package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/kennel"
	"github.com/etnz/kennel/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	breeds := predict.Set{}
	for b := range kennel.AllBreeds() {
		breeds = append(breeds, string(b))
	}
	partners := predict.Set{"partner1", "partner2"}
	genders := predict.Set{"male", "female"}
	payments := predict.Set{"cash", "card"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add-dog": {Flags: map[string]complete.Predictor{
				"breed":  breeds,
				"gender": genders,
				"birth":  predict.Nothing,
				"owner":  partners,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"breed":   breeds,
				"gender":  genders,
				"seller":  partners,
				"price":   predict.Nothing,
				"payment": payments,
				"d":       predict.Nothing,
			}},
			"delete-dog": {Flags: map[string]complete.Predictor{
				"id": predict.Nothing,
			}},
			"dogs":      {},
			"available": {},
			"summary":   {},
			"balance":   {},
			"history": {Flags: map[string]complete.Predictor{
				"seller":  partners,
				"breed":   breeds,
				"payment": payments,
				"s":       predict.Nothing,
				"d":       predict.Nothing,
				"head":    predict.Nothing,
				"tail":    predict.Nothing,
			}},
			"recipient": {Flags: map[string]complete.Predictor{
				"seller":  partners,
				"payment": payments,
			}},
			"clear-history": {Flags: map[string]complete.Predictor{
				"f": predict.Nothing,
			}},
			"import": {Flags: map[string]complete.Predictor{
				"i": predict.Files("*.json"),
			}},
			"export": {},
			"fmt":    {},
			"topic":  {Args: predict.Set{"readme", "getting-started", "money-routing", "data-file", "*"}},
			"assist": {},
		},
	}
}

func main() {
	// Completion must run before flag parsing, it exits on its own when
	// invoked by the shell.
	completion().Complete("kennel")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
