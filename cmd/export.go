package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel"
	"github.com/google/subcommands"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger to stdout in canonical JSON" }
func (*exportCmd) Usage() string {
	return `kennel export

  Writes the whole ledger to stdout in canonical JSON form, suitable for
  backups or for feeding another ledger file.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (*exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := kennel.EncodeLedger(os.Stdout, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding ledger:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
