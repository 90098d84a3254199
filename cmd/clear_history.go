package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearHistoryCmd struct {
	force bool
}

func (*clearHistoryCmd) Name() string     { return "clear-history" }
func (*clearHistoryCmd) Synopsis() string { return "erase the sales history and reset the balances" }
func (*clearHistoryCmd) Usage() string {
	return `kennel clear-history -f

  Erases the sales history and resets both partner balances to zero. The
  inventory is left untouched. This cannot be undone, so the -f flag is
  required.
`
}

func (p *clearHistoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Confirm erasing the history.")
}

func (p *clearHistoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		fmt.Fprintln(os.Stderr, "Error: clearing the history cannot be undone, run again with -f to confirm.")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := store.ClearHistory(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cleared sales history in %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
