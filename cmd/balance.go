package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the partner balances" }
func (*balanceCmd) Usage() string {
	return `kennel balance

  Displays how much money each partner has received from past sales, and
  the total. The total always equals the sum of all sale prices.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Balances(ledger.Balances(), ledger.Currency()))
	return subcommands.ExitSuccess
}
