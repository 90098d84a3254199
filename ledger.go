package kennel

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/kennel/date"
)

// Ledger is the in-memory state of the business: the dogs currently in
// inventory, the append-only sales history, and the two partner balances.
//
// All mutating operations are synchronous and atomic from the caller's
// perspective: they either fully apply or, on validation failure, leave the
// ledger untouched. The Ledger itself does not persist anything; see Store.
type Ledger struct {
	dogs     []Dog  // insertion order, the order sales match against
	sales    []Sale // insertion order = chronological order of recording
	balances Balances
	currency string // display currency code, e.g. "EUR"
	nextID   int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		dogs:     make([]Dog, 0),
		sales:    make([]Sale, 0),
		currency: DefaultCurrency,
		nextID:   1,
	}
}

// Currency returns the display currency code of amounts in this ledger.
func (l *Ledger) Currency() string { return l.currency }

// SetCurrency sets the display currency code.
func (l *Ledger) SetCurrency(code string) { l.currency = code }

// allocateID returns a fresh id, unique across dogs and sales ever recorded
// in this ledger.
func (l *Ledger) allocateID() int64 {
	id := l.nextID
	l.nextID++
	return id
}

// seenID tells the ledger that id is taken, so that allocateID never
// returns it. Used when decoding or importing existing records.
func (l *Ledger) seenID(id int64) {
	if id >= l.nextID {
		l.nextID = id + 1
	}
}

// AddDog records a new dog in inventory and returns it.
//
// The birth date may be unset (zero Date): the owners do not always know it.
// Breed, gender and owner come from a constrained selection upstream, but
// are still validated here and fail with ErrInvalidInput rather than
// corrupting the books.
func (l *Ledger) AddDog(breed Breed, gender Gender, birth date.Date, owner Partner) (Dog, error) {
	if err := validDog(breed, gender, owner); err != nil {
		return Dog{}, err
	}
	dog := Dog{
		ID:        l.allocateID(),
		Breed:     breed,
		Gender:    gender,
		BirthDate: birth,
		Owner:     owner,
	}
	l.dogs = append(l.dogs, dog)
	return dog, nil
}

// AddSale sells the first dog in inventory matching (breed, gender,
// owner=seller), in insertion order. There is deliberately no secondary
// tie-break: when several dogs match, the earliest-inserted one goes.
//
// On success the matched dog leaves inventory, a Sale snapshot enters the
// history, and the money recipient's balance is credited with price. The
// recipient follows the Recipient policy: cash stays with the seller, card
// goes to the other partner.
//
// When the sale date is unset it defaults to today. Fails with
// ErrNoMatchingDog when no dog matches, leaving the ledger untouched.
func (l *Ledger) AddSale(breed Breed, gender Gender, seller Partner, on date.Date, price int64, payment Payment) (Sale, error) {
	if err := validSale(breed, gender, seller, price, payment); err != nil {
		return Sale{}, err
	}

	idx := slices.IndexFunc(l.dogs, func(d Dog) bool {
		return d.Breed == breed && d.Gender == gender && d.Owner == seller
	})
	if idx < 0 {
		return Sale{}, fmt.Errorf("%w: %s %s held by %s", ErrNoMatchingDog, BreedName(breed), gender, seller)
	}
	sold := l.dogs[idx]

	if on.IsZero() {
		on = date.Today()
	}
	recipient := Recipient(seller, payment)

	sale := Sale{
		ID:             l.allocateID(),
		Date:           on,
		Breed:          sold.Breed,
		Gender:         sold.Gender,
		BirthDate:      sold.BirthDate,
		Seller:         seller,
		Price:          price,
		Payment:        payment,
		MoneyRecipient: recipient,
	}

	l.balances.credit(recipient, price)
	l.dogs = slices.Delete(l.dogs, idx, idx+1)
	l.sales = append(l.sales, sale)
	return sale, nil
}

// DeleteDog removes the dog with the given id from inventory. Sales and
// balances are unaffected. Fails with ErrNotFound when the id is unknown;
// from the ledger's perspective that failure is an idempotent no-op.
func (l *Ledger) DeleteDog(id int64) error {
	idx := slices.IndexFunc(l.dogs, func(d Dog) bool { return d.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	l.dogs = slices.Delete(l.dogs, idx, idx+1)
	return nil
}

// ClearHistory empties the sales history and resets both balances to zero as
// a single operation. The inventory is untouched. Balances are never reset
// independently of the history: that would break the conservation between
// balances and recorded sales.
func (l *Ledger) ClearHistory() {
	l.sales = l.sales[:0]
	l.balances = Balances{}
}

// Balances returns a copy of the current partner balances.
func (l *Ledger) Balances() Balances { return l.balances }

// TotalBalance returns the derived total of both partner balances.
func (l *Ledger) TotalBalance() int64 { return l.balances.Total() }

// Dogs returns an iterator over the inventory in insertion order.
func (l *Ledger) Dogs() iter.Seq2[int, Dog] {
	return func(yield func(int, Dog) bool) {
		for i, d := range l.dogs {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Sales returns an iterator over the sales history in recording order. With
// filters, only sales accepted by at least one filter are yielded.
func (l *Ledger) Sales(filters ...func(Sale) bool) iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, s := range l.sales {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(s) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, s) {
				return
			}
		}
	}
}

// Dog returns the inventory dog with this id, or false.
func (l *Ledger) Dog(id int64) (Dog, bool) {
	idx := slices.IndexFunc(l.dogs, func(d Dog) bool { return d.ID == id })
	if idx < 0 {
		return Dog{}, false
	}
	return l.dogs[idx], true
}

// DogCount returns the number of dogs currently in inventory.
func (l *Ledger) DogCount() int { return len(l.dogs) }

// SaleCount returns the number of sales in history.
func (l *Ledger) SaleCount() int { return len(l.sales) }

// BySeller returns a predicate that filters sales by seller.
func BySeller(p Partner) func(Sale) bool {
	return func(s Sale) bool { return s.Seller == p }
}

// BySoldBreed returns a predicate that filters sales by breed.
func BySoldBreed(b Breed) func(Sale) bool {
	return func(s Sale) bool { return s.Breed == b }
}

// ByPayment returns a predicate that filters sales by payment method.
func ByPayment(p Payment) func(Sale) bool {
	return func(s Sale) bool { return s.Payment == p }
}

// ByRange returns a predicate that filters sales by date range.
func ByRange(r date.Range) func(Sale) bool {
	return func(s Sale) bool { return r.Contains(s.Date) }
}

// AcceptAll accepts any sale.
func AcceptAll(Sale) bool { return true }

func validDog(breed Breed, gender Gender, owner Partner) error {
	if _, err := ParseBreed(string(breed)); err != nil {
		return err
	}
	return validRecord(gender, owner)
}

// validRecord checks the two-valued enums of a dog or sale record. Unlike
// validDog it does not require the breed to be registered, so it is also
// safe for records loaded from data files.
func validRecord(gender Gender, owner Partner) error {
	if gender != Male && gender != Female {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, gender)
	}
	if owner != Partner1 && owner != Partner2 {
		return fmt.Errorf("%w: unknown partner %q", ErrInvalidInput, owner)
	}
	return nil
}

func validSale(breed Breed, gender Gender, seller Partner, price int64, payment Payment) error {
	if err := validDog(breed, gender, seller); err != nil {
		return err
	}
	if payment != Cash && payment != Card {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, payment)
	}
	if price < 0 {
		return fmt.Errorf("%w: negative price %d", ErrInvalidInput, price)
	}
	return nil
}
