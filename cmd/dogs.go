package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel/renderer"
	"github.com/google/subcommands"
)

type dogsCmd struct{}

func (*dogsCmd) Name() string     { return "dogs" }
func (*dogsCmd) Synopsis() string { return "list the dogs currently in stock" }
func (*dogsCmd) Usage() string {
	return `kennel dogs

  Lists every dog in the inventory with its id, breed, gender, birth date
  and registering partner.
`
}

func (*dogsCmd) SetFlags(f *flag.FlagSet) {}

func (*dogsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Dogs(ledger))
	return subcommands.ExitSuccess
}
