package kennel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/kennel/date"
)

// Storage is the durable backend for a ledger. Any key-value mechanism that
// can hold one document satisfies the contract.
type Storage interface {
	// Load reads the persisted ledger, or returns an empty one when nothing
	// has ever been written.
	Load() (*Ledger, error)
	// Save persists the full ledger state.
	Save(*Ledger) error
}

// FileStorage persists the ledger as a single JSON file at Path, the
// equivalent of one fixed key in a key-value store.
type FileStorage struct {
	Path string
}

// Load reads the ledger file. A missing file is not an error: it loads as an
// empty ledger, like a store that has never been written.
func (s FileStorage) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.Path, err)
	}
	return l, nil
}

// Save writes the full ledger state to the file, creating parent directories
// as needed.
func (s FileStorage) Save(l *Ledger) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", s.Path, err)
		}
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", s.Path, err)
	}
	defer f.Close()
	return EncodeLedger(f, l)
}

// Store binds a Ledger to its Storage: every successful mutating operation
// is persisted before the call returns, so the in-memory and persisted
// states agree after each operation. The in-memory state is authoritative; a
// failed save surfaces as an error but does not roll the mutation back.
//
// The application operates exactly one Store, constructed once at startup,
// and hands it to the presentation layer.
type Store struct {
	ledger  *Ledger
	storage Storage
}

// Open loads the persisted state once and returns a Store over it.
func Open(storage Storage) (*Store, error) {
	l, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{ledger: l, storage: storage}, nil
}

// Ledger exposes the underlying ledger for reads. Mutations must go through
// the Store so they get persisted.
func (s *Store) Ledger() *Ledger { return s.ledger }

// AddDog records a new dog and persists the state.
func (s *Store) AddDog(breed Breed, gender Gender, birth date.Date, owner Partner) (Dog, error) {
	dog, err := s.ledger.AddDog(breed, gender, birth, owner)
	if err != nil {
		return Dog{}, err
	}
	return dog, s.storage.Save(s.ledger)
}

// AddSale records a sale and persists the state.
func (s *Store) AddSale(breed Breed, gender Gender, seller Partner, on date.Date, price int64, payment Payment) (Sale, error) {
	sale, err := s.ledger.AddSale(breed, gender, seller, on, price, payment)
	if err != nil {
		return Sale{}, err
	}
	return sale, s.storage.Save(s.ledger)
}

// DeleteDog removes a dog from inventory and persists the state.
func (s *Store) DeleteDog(id int64) error {
	if err := s.ledger.DeleteDog(id); err != nil {
		return err
	}
	return s.storage.Save(s.ledger)
}

// ClearHistory clears the sales history, zeroes both balances and persists
// the state.
func (s *Store) ClearHistory() error {
	s.ledger.ClearHistory()
	return s.storage.Save(s.ledger)
}
