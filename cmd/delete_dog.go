package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteDogCmd struct {
	id int64
}

func (*deleteDogCmd) Name() string     { return "delete-dog" }
func (*deleteDogCmd) Synopsis() string { return "remove a dog from the inventory" }
func (*deleteDogCmd) Usage() string {
	return `kennel delete-dog -id <id>

  Removes a dog from the inventory without recording a sale. Use the ids
  shown by 'kennel dogs'. Balances and history are left untouched.
`
}

func (p *deleteDogCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Id of the dog to remove.")
}

func (p *deleteDogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := store.DeleteDog(p.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed dog #%d from %s\n", p.id, *ledgerFile)
	return subcommands.ExitSuccess
}
