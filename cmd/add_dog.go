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

type addDogCmd struct {
	breed  string
	gender string
	birth  string
	owner  string
}

func (*addDogCmd) Name() string     { return "add-dog" }
func (*addDogCmd) Synopsis() string { return "add a dog to the inventory" }
func (*addDogCmd) Usage() string {
	return `kennel add-dog -breed <code> -gender <male|female> [-birth <date>] [-owner <partner>]

  Registers a new dog in the inventory. The birth date is optional; leave it
  out when it is unknown.

Usage Examples:
# Register a female cocker born on March 14th, 2025.
$ kennel add-dog -breed cocker -gender female -birth 2025-3-14
`
}

func (p *addDogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.breed, "breed", "", "Breed code of the dog (e.g. cocker).")
	f.StringVar(&p.gender, "gender", "", "Gender of the dog (male or female).")
	f.StringVar(&p.birth, "birth", "", "Birth date (YYYY-MM-DD). Optional.")
	f.StringVar(&p.owner, "owner", string(kennel.Partner1), "Partner who registers the dog.")
}

func (p *addDogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	owner, err := kennel.ParsePartner(p.owner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var birth date.Date
	if p.birth != "" {
		birth, err = date.Parse(p.birth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing birth date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	dog, err := store.AddDog(breed, gender, birth, owner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %s #%d to %s\n", dog.Gender, kennel.BreedName(dog.Breed), dog.ID, *ledgerFile)
	return subcommands.ExitSuccess
}
