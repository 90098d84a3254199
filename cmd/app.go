// Package cmd implements the CLI application to manage the kennel ledger.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/kennel"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to install the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addDogCmd{}, "inventory")
	c.Register(&deleteDogCmd{}, "inventory")
	c.Register(&dogsCmd{}, "inventory")
	c.Register(&availableCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")
	c.Register(&historyCmd{}, "sales")
	c.Register(&balanceCmd{}, "sales")
	c.Register(&recipientCmd{}, "sales")
	c.Register(&clearHistoryCmd{}, "sales")

	c.Register(&summaryCmd{}, "reporting")

	c.Register(&importCmd{}, "ledger file")
	c.Register(&exportCmd{}, "ledger file")
	c.Register(&fmtCmd{}, "ledger file")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "kennel.json", "Path to the kennel ledger file (JSON format)")

// appStorage returns the storage backing the application ledger file.
func appStorage() kennel.FileStorage {
	return kennel.FileStorage{Path: *ledgerFile}
}

// DecodeLedger reads the ledger from the application's ledger file.
// A missing file yields a new empty ledger.
func DecodeLedger() (*kennel.Ledger, error) {
	if _, err := os.Stat(*ledgerFile); errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger instead")
	}
	return appStorage().Load()
}

// OpenStore opens the application ledger file for mutation: every
// successful operation on the returned store is written back to disk.
func OpenStore() (*kennel.Store, error) {
	return kennel.Open(appStorage())
}
