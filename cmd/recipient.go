package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel"
	"github.com/google/subcommands"
)

type recipientCmd struct {
	seller  string
	payment string
}

func (*recipientCmd) Name() string     { return "recipient" }
func (*recipientCmd) Synopsis() string { return "preview which partner a sale would credit" }
func (*recipientCmd) Usage() string {
	return `kennel recipient -seller <partner> -payment <cash|card>

  Previews the money routing for a hypothetical sale without recording
  anything: cash credits the seller, card credits the other partner.
`
}

func (p *recipientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.seller, "seller", "", "Partner who would make the sale.")
	f.StringVar(&p.payment, "payment", "", "Payment method (cash or card).")
}

func (p *recipientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seller, err := kennel.ParsePartner(p.seller)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	payment, err := kennel.ParsePayment(p.payment)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("A %s sale by %s credits %s\n", payment, seller, kennel.Recipient(seller, payment))
	return subcommands.ExitSuccess
}
