package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel"
	"github.com/etnz/kennel/date"
	"github.com/etnz/kennel/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	seller  string
	breed   string
	payment string
	start   string
	date    string
	head    int
	tail    int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list past sales" }
func (*historyCmd) Usage() string {
	return `kennel history [-seller <partner>] [-breed <code>] [-payment <cash|card>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists past sales, most recent first, with options for filtering and
  limiting the output.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.seller, "seller", "", "Only sales made by this partner.")
	f.StringVar(&p.breed, "breed", "", "Only sales of this breed.")
	f.StringVar(&p.payment, "payment", "", "Only sales with this payment method (cash or card).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.date, "d", "", "The end date for the range (defaults to today when -s is set).")
	f.IntVar(&p.head, "head", 0, "Show only the first N sales.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N sales.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(kennel.Sale) bool

	if p.seller != "" {
		seller, err := kennel.ParsePartner(p.seller)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, kennel.BySeller(seller))
	}
	if p.breed != "" {
		filters = append(filters, kennel.BySoldBreed(kennel.Breed(p.breed)))
	}
	if p.payment != "" {
		payment, err := kennel.ParsePayment(p.payment)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, kennel.ByPayment(payment))
	}
	if p.start != "" || p.date != "" {
		endDate := date.Today()
		if p.date != "" {
			endDate, err = date.Parse(p.date)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		startDate := date.Date{}
		if p.start != "" {
			startDate, err = date.Parse(p.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		filters = append(filters, kennel.ByRange(date.NewRange(startDate, endDate)))
	}

	// Every criterion must hold, so combine them into a single filter.
	match := func(s kennel.Sale) bool {
		for _, filter := range filters {
			if !filter(s) {
				return false
			}
		}
		return true
	}

	var sales []kennel.Sale
	for _, s := range ledger.Sales(match) {
		sales = append(sales, s)
	}

	if p.head > 0 && len(sales) > p.head {
		sales = sales[:p.head]
	}
	if p.tail > 0 && len(sales) > p.tail {
		sales = sales[len(sales)-p.tail:]
	}

	printMarkdown(renderer.History(sales, ledger.Currency()))
	return subcommands.ExitSuccess
}
