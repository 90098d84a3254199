package kennel

import (
	"fmt"

	"github.com/etnz/kennel/date"
)

// Partner identifies one of the two business co-owners. They jointly own the
// inventory and split the proceeds of every sale.
type Partner string

const (
	Partner1 Partner = "partner1"
	Partner2 Partner = "partner2"
)

// Other returns the counter-party of p.
func (p Partner) Other() Partner {
	if p == Partner1 {
		return Partner2
	}
	return Partner1
}

func (p Partner) String() string {
	switch p {
	case Partner1:
		return "partner 1"
	case Partner2:
		return "partner 2"
	default:
		return "unknown"
	}
}

// ParsePartner parses a string into a Partner. It accepts both the canonical
// form ("partner1") and the short form ("1") used by the legacy data files.
func ParsePartner(s string) (Partner, error) {
	switch s {
	case "partner1", "1":
		return Partner1, nil
	case "partner2", "2":
		return Partner2, nil
	default:
		return "", fmt.Errorf("%w: unknown partner %q", ErrInvalidInput, s)
	}
}

// Gender of a dog.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender parses a string into a Gender.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, s)
	}
}

// Payment is the method a buyer paid with.
type Payment string

const (
	Cash Payment = "cash"
	Card Payment = "card"
)

// ParsePayment parses a string into a Payment.
func ParsePayment(s string) (Payment, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "card":
		return Card, nil
	default:
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, s)
	}
}

// Recipient applies the money-routing policy: cash stays with the seller,
// card payments are credited to the other partner (they settle through a
// shared account, so the card amount belongs to the counter-party).
//
// This rule is a fixed business policy shared by sales and previews; it is
// what keeps the two balances summing up to the sales history.
func Recipient(seller Partner, payment Payment) Partner {
	if payment == Cash {
		return seller
	}
	return seller.Other()
}

// Dog is a single inventory item, a dog not yet sold. A Dog is never mutated
// after creation: a sale or a deletion removes it from inventory.
type Dog struct {
	ID        int64     `json:"id"`
	Breed     Breed     `json:"breed"`
	Gender    Gender    `json:"gender"`
	BirthDate date.Date `json:"birthDate"` // may be unset
	Owner     Partner   `json:"owner"`     // the partner currently holding the dog
}

// MarshalJSON implements the json.Marshaler interface for Dog with a
// canonical field order.
func (d Dog) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("breed", d.Breed)
	w.Append("gender", d.Gender)
	w.Append("birthDate", d.BirthDate)
	w.Append("owner", d.Owner)
	return w.MarshalJSON()
}

// Sale is one entry of the append-only sales history. The dog's details are
// copied at sale time: the Dog record itself is gone from inventory.
type Sale struct {
	ID        int64     `json:"id"`
	Date      date.Date `json:"date"`
	Breed     Breed     `json:"breed"`
	Gender    Gender    `json:"gender"`
	BirthDate date.Date `json:"birthDate"`
	Seller    Partner   `json:"seller"`
	Price     int64     `json:"price"` // whole currency units
	Payment   Payment   `json:"payment"`
	// MoneyRecipient is derived by Recipient at sale time and never recomputed.
	MoneyRecipient Partner `json:"moneyRecipient"`
}

// MarshalJSON implements the json.Marshaler interface for Sale with a
// canonical field order.
func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("date", s.Date)
	w.Append("breed", s.Breed)
	w.Append("gender", s.Gender)
	w.Append("birthDate", s.BirthDate)
	w.Append("seller", s.Seller)
	w.Append("price", s.Price)
	w.Append("payment", s.Payment)
	w.Append("moneyRecipient", s.MoneyRecipient)
	return w.MarshalJSON()
}

// Balances holds the running balance of each partner, in whole currency
// units. Balances are signed: a partner can run in deficit relative to the
// other.
type Balances struct {
	Partner1 int64 `json:"partner1"`
	Partner2 int64 `json:"partner2"`
}

// Get returns the balance of a partner.
func (b Balances) Get(p Partner) int64 {
	if p == Partner1 {
		return b.Partner1
	}
	return b.Partner2
}

// Total returns the derived total of both balances. It always equals the sum
// of all sale prices currently in history.
func (b Balances) Total() int64 { return b.Partner1 + b.Partner2 }

func (b *Balances) credit(p Partner, amount int64) {
	if p == Partner1 {
		b.Partner1 += amount
		return
	}
	b.Partner2 += amount
}
