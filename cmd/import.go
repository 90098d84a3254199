package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/kennel"
	"github.com/google/subcommands"
)

type importCmd struct {
	inputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a legacy ledger export" }
func (*importCmd) Usage() string {
	return `kennel import [-i <file>]

  Imports a JSON export from the old browser application and replaces the
  current ledger with it. Reads from stdin unless -i is given. Legacy
  partner codes (1/2) and millisecond-timestamp ids are accepted.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.inputFile, "i", "", "File to import. Defaults to stdin.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if p.inputFile != "" {
		file, err := os.Open(p.inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", p.inputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	ledger, err := kennel.ImportLedger(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error importing:", err)
		return subcommands.ExitFailure
	}

	if err := appStorage().Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d dogs and %d sales into %s\n", ledger.DogCount(), ledger.SaleCount(), *ledgerFile)
	return subcommands.ExitSuccess
}
