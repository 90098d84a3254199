package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kennel"
	"github.com/etnz/kennel/date"
	"github.com/google/subcommands"
)

type sellCmd struct {
	breed   string
	gender  string
	seller  string
	price   int64
	payment string
	date    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a dog" }
func (*sellCmd) Usage() string {
	return `kennel sell -breed <code> -gender <male|female> -seller <partner> -price <amount> -payment <cash|card> [-d <date>]

  Records a sale. The oldest dog in stock matching the breed and gender and
  held by the seller is moved from the inventory to the sales history, and
  the money is credited
  to a partner according to the payment method: cash goes to the seller,
  card goes to the other partner.

Usage Examples:
# Partner 1 sells a male maltipoo for 1200, paid by card.
$ kennel sell -breed maltipoo -gender male -seller partner1 -price 1200 -payment card
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.breed, "breed", "", "Breed code of the sold dog.")
	f.StringVar(&p.gender, "gender", "", "Gender of the sold dog (male or female).")
	f.StringVar(&p.seller, "seller", "", "Partner who made the sale.")
	f.Int64Var(&p.price, "price", 0, "Sale price in whole currency units.")
	f.StringVar(&p.payment, "payment", "", "Payment method (cash or card).")
	f.StringVar(&p.date, "d", "", "Date of the sale (defaults to today).")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	breed, err := kennel.ParseBreed(p.breed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	gender, err := kennel.ParseGender(p.gender)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
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

	var on date.Date
	if p.date != "" {
		on, err = date.Parse(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	sale, err := store.AddSale(breed, gender, seller, on, p.price, payment)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	price := kennel.M(sale.Price, store.Ledger().Currency())
	fmt.Printf("Sold %s %s for %s, money goes to %s\n",
		sale.Gender, kennel.BreedName(sale.Breed), price, sale.MoneyRecipient)
	return subcommands.ExitSuccess
}
