package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel/renderer"
	"github.com/google/subcommands"
)

type availableCmd struct{}

func (*availableCmd) Name() string     { return "available" }
func (*availableCmd) Synopsis() string { return "count the dogs in stock by breed and gender" }
func (*availableCmd) Usage() string {
	return `kennel available

  Counts the dogs currently in stock, grouped by breed and gender.
`
}

func (*availableCmd) SetFlags(f *flag.FlagSet) {}

func (*availableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Available(ledger))
	return subcommands.ExitSuccess
}
