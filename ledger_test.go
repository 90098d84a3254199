package kennel

import (
	"errors"
	"testing"

	"github.com/etnz/kennel/date"
)

// newTestLedger creates a ledger with a small known inventory.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	add := func(breed Breed, g Gender, owner Partner) Dog {
		d, err := l.AddDog(breed, g, date.MustParse("2025-03-01"), owner)
		if err != nil {
			t.Fatalf("AddDog: %v", err)
		}
		return d
	}
	add("cocker", Male, Partner1)
	add("cocker", Female, Partner1)
	add("maltipoo", Male, Partner2)
	add("maltipoo", Female, Partner2)
	return l
}

// salesTotal sums prices over the whole history.
func salesTotal(l *Ledger) int64 {
	var total int64
	for _, s := range l.Sales() {
		total += s.Price
	}
	return total
}

func TestAddDog_AllocatesUniqueIDs(t *testing.T) {
	l := NewLedger()
	seen := make(map[int64]bool)
	for i := 0; i < 20; i++ {
		d, err := l.AddDog("cocker", Male, date.Date{}, Partner1)
		if err != nil {
			t.Fatalf("AddDog: %v", err)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate dog id %d", d.ID)
		}
		seen[d.ID] = true
	}
	// sale ids share the same sequence and must not collide either
	s, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 100, Cash)
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if seen[s.ID] {
		t.Errorf("sale id %d collides with a dog id", s.ID)
	}
}

func TestAddDog_RejectsInvalidEnums(t *testing.T) {
	l := NewLedger()
	testCases := []struct {
		name   string
		breed  Breed
		gender Gender
		owner  Partner
	}{
		{name: "unknown breed", breed: "poodle", gender: Male, owner: Partner1},
		{name: "unknown gender", breed: "cocker", gender: "other", owner: Partner1},
		{name: "unknown owner", breed: "cocker", gender: Male, owner: "partner3"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.AddDog(tc.breed, tc.gender, date.Date{}, tc.owner)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("AddDog = %v, want ErrInvalidInput", err)
			}
			if l.DogCount() != 0 {
				t.Errorf("failed AddDog mutated inventory")
			}
		})
	}
}

func TestAddSale_MoneyRouting(t *testing.T) {
	testCases := []struct {
		name          string
		seller        Partner
		payment       Payment
		wantRecipient Partner
	}{
		{name: "cash stays with seller 1", seller: Partner1, payment: Cash, wantRecipient: Partner1},
		{name: "cash stays with seller 2", seller: Partner2, payment: Cash, wantRecipient: Partner2},
		{name: "card routes to partner 2", seller: Partner1, payment: Card, wantRecipient: Partner2},
		{name: "card routes to partner 1", seller: Partner2, payment: Card, wantRecipient: Partner1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			breed := Breed("cocker")
			if tc.seller == Partner2 {
				breed = "maltipoo"
			}
			l := newTestLedger(t)
			sale, err := l.AddSale(breed, Male, tc.seller, date.MustParse("2025-08-01"), 100, tc.payment)
			if err != nil {
				t.Fatalf("AddSale: %v", err)
			}
			if sale.MoneyRecipient != tc.wantRecipient {
				t.Errorf("MoneyRecipient = %s, want %s", sale.MoneyRecipient, tc.wantRecipient)
			}
			if got := l.Balances().Get(tc.wantRecipient); got != 100 {
				t.Errorf("recipient balance = %d, want 100", got)
			}
			if got := l.Balances().Get(tc.wantRecipient.Other()); got != 0 {
				t.Errorf("other balance = %d, want 0", got)
			}
		})
	}
}

func TestAddSale_MovesExactlyOneDog(t *testing.T) {
	l := newTestLedger(t)
	dogs, sales := l.DogCount(), l.SaleCount()

	if _, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 500, Cash); err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if l.DogCount() != dogs-1 {
		t.Errorf("inventory size = %d, want %d", l.DogCount(), dogs-1)
	}
	if l.SaleCount() != sales+1 {
		t.Errorf("history size = %d, want %d", l.SaleCount(), sales+1)
	}
}

func TestAddSale_NoMatchLeavesStateUnchanged(t *testing.T) {
	l := NewLedger()
	if _, err := l.AddDog("cocker", Male, date.Date{}, Partner1); err != nil {
		t.Fatal(err)
	}

	// same breed, wrong gender
	_, err := l.AddSale("cocker", Female, Partner1, date.Date{}, 100, Cash)
	if !errors.Is(err, ErrNoMatchingDog) {
		t.Fatalf("AddSale = %v, want ErrNoMatchingDog", err)
	}
	if l.DogCount() != 1 || l.SaleCount() != 0 {
		t.Errorf("failed sale mutated collections: %d dogs, %d sales", l.DogCount(), l.SaleCount())
	}
	if b := l.Balances(); b != (Balances{}) {
		t.Errorf("failed sale mutated balances: %+v", b)
	}

	// right dog, wrong seller
	if _, err := l.AddSale("cocker", Male, Partner2, date.Date{}, 100, Cash); !errors.Is(err, ErrNoMatchingDog) {
		t.Errorf("AddSale with wrong seller = %v, want ErrNoMatchingDog", err)
	}
}

func TestAddSale_FirstMatchWins(t *testing.T) {
	l := NewLedger()
	d1, _ := l.AddDog("cocker", Male, date.MustParse("2025-01-01"), Partner1)
	d2, _ := l.AddDog("cocker", Male, date.MustParse("2024-01-01"), Partner1)

	sale, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 100, Cash)
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	// The earliest-inserted match is sold, regardless of age or id.
	if sale.BirthDate != d1.BirthDate {
		t.Errorf("sold dog born %s, want the first-inserted one born %s", sale.BirthDate, d1.BirthDate)
	}
	if _, ok := l.Dog(d1.ID); ok {
		t.Errorf("first-inserted dog still in inventory")
	}
	if _, ok := l.Dog(d2.ID); !ok {
		t.Errorf("second-inserted dog left inventory")
	}
}

func TestAddSale_SnapshotsDogFields(t *testing.T) {
	l := NewLedger()
	birth := date.MustParse("2025-02-14")
	if _, err := l.AddDog("maltipoo", Female, birth, Partner2); err != nil {
		t.Fatal(err)
	}
	on := date.MustParse("2025-08-30")
	sale, err := l.AddSale("maltipoo", Female, Partner2, on, 1200, Card)
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if sale.Breed != "maltipoo" || sale.Gender != Female || sale.BirthDate != birth {
		t.Errorf("sale did not snapshot the dog: %+v", sale)
	}
	if sale.Date != on || sale.Price != 1200 || sale.Payment != Card || sale.Seller != Partner2 {
		t.Errorf("sale fields wrong: %+v", sale)
	}
}

func TestAddSale_DefaultsDateToToday(t *testing.T) {
	l := newTestLedger(t)
	sale, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 100, Cash)
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if sale.Date != date.Today() {
		t.Errorf("sale date = %s, want today", sale.Date)
	}
}

func TestBalanceConservation(t *testing.T) {
	l := newTestLedger(t)

	steps := []struct {
		breed   Breed
		gender  Gender
		seller  Partner
		price   int64
		payment Payment
	}{
		{"cocker", Male, Partner1, 700, Cash},
		{"maltipoo", Female, Partner2, 1500, Card},
		{"cocker", Female, Partner1, 900, Card},
		{"maltipoo", Male, Partner2, 0, Cash}, // given away, price zero
	}
	for _, s := range steps {
		if _, err := l.AddSale(s.breed, s.gender, s.seller, date.Date{}, s.price, s.payment); err != nil {
			t.Fatalf("AddSale(%+v): %v", s, err)
		}
		if l.TotalBalance() != salesTotal(l) {
			t.Fatalf("balances diverged from history: total %d, sales %d", l.TotalBalance(), salesTotal(l))
		}
	}
	// a failed sale must not break the invariant either
	if _, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 100, Cash); err == nil {
		t.Fatal("expected no matching dog")
	}
	if l.TotalBalance() != salesTotal(l) {
		t.Errorf("balances diverged after failed sale: total %d, sales %d", l.TotalBalance(), salesTotal(l))
	}
}

func TestAddSale_RejectsInvalidInput(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.AddSale("cocker", Male, Partner1, date.Date{}, -5, Cash); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative price: err = %v, want ErrInvalidInput", err)
	}
	if _, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 100, "cheque"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown payment: err = %v, want ErrInvalidInput", err)
	}
	if l.SaleCount() != 0 {
		t.Errorf("rejected sales were recorded")
	}
}

func TestDeleteDog(t *testing.T) {
	l := newTestLedger(t)
	var target Dog
	for _, d := range l.Dogs() {
		target = d
		break
	}
	before := l.DogCount()

	if err := l.DeleteDog(target.ID); err != nil {
		t.Fatalf("DeleteDog: %v", err)
	}
	if l.DogCount() != before-1 {
		t.Errorf("inventory size = %d, want %d", l.DogCount(), before-1)
	}
	if _, ok := l.Dog(target.ID); ok {
		t.Errorf("dog %d still present after delete", target.ID)
	}
	// deleting again is NotFound, and a no-op
	if err := l.DeleteDog(target.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	// sales and balances are never touched by a delete
	if l.SaleCount() != 0 || l.TotalBalance() != 0 {
		t.Errorf("delete touched sales or balances")
	}
}

func TestClearHistory(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 800, Cash); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddSale("maltipoo", Male, Partner2, date.Date{}, 600, Card); err != nil {
		t.Fatal(err)
	}
	dogs := l.DogCount()

	l.ClearHistory()

	if l.SaleCount() != 0 {
		t.Errorf("sales not cleared: %d", l.SaleCount())
	}
	if b := l.Balances(); b.Partner1 != 0 || b.Partner2 != 0 {
		t.Errorf("balances not zeroed: %+v", b)
	}
	if l.DogCount() != dogs {
		t.Errorf("clear history touched inventory")
	}
}

func TestSalesFilters(t *testing.T) {
	l := newTestLedger(t)
	l.AddSale("cocker", Male, Partner1, date.MustParse("2025-08-01"), 100, Cash)
	l.AddSale("maltipoo", Male, Partner2, date.MustParse("2025-08-10"), 200, Card)
	l.AddSale("cocker", Female, Partner1, date.MustParse("2025-08-20"), 300, Card)

	count := func(filters ...func(Sale) bool) int {
		n := 0
		for range l.Sales(filters...) {
			n++
		}
		return n
	}

	if got := count(BySeller(Partner1)); got != 2 {
		t.Errorf("BySeller(1) = %d, want 2", got)
	}
	if got := count(ByPayment(Card)); got != 2 {
		t.Errorf("ByPayment(card) = %d, want 2", got)
	}
	if got := count(BySoldBreed("maltipoo")); got != 1 {
		t.Errorf("BySoldBreed(maltipoo) = %d, want 1", got)
	}
	r := date.NewRange(date.MustParse("2025-08-05"), date.MustParse("2025-08-15"))
	if got := count(ByRange(r)); got != 1 {
		t.Errorf("ByRange = %d, want 1", got)
	}
	if got := count(); got != 3 {
		t.Errorf("no filter = %d, want 3", got)
	}
}

func TestSummaryByBreed(t *testing.T) {
	l := NewLedger()
	l.AddDog("cocker", Male, date.Date{}, Partner1)
	l.AddDog("cocker", Male, date.Date{}, Partner2)
	l.AddDog("cocker", Female, date.Date{}, Partner1)
	l.AddDog("maltipoo", Female, date.Date{}, Partner2)

	got := l.SummaryByBreed("cocker")
	want := BreedSummary{Breed: "cocker", Males: 2, Females: 1, OwnedByPartner1: 2, OwnedByPartner2: 1}
	if got != want {
		t.Errorf("SummaryByBreed(cocker) = %+v, want %+v", got, want)
	}
	if got.Total() != 3 {
		t.Errorf("Total() = %d, want 3", got.Total())
	}
	if empty := l.SummaryByBreed("husky"); empty.Total() != 0 {
		t.Errorf("summary of absent breed not empty: %+v", empty)
	}
}

func TestAvailableCounts(t *testing.T) {
	l := newTestLedger(t)
	counts := l.AvailableCounts()
	if c := counts["cocker"]; c != (GenderCount{Males: 1, Females: 1}) {
		t.Errorf("cocker counts = %+v", c)
	}
	if c := counts["maltipoo"]; c != (GenderCount{Males: 1, Females: 1}) {
		t.Errorf("maltipoo counts = %+v", c)
	}
	// a sold dog is no longer available
	if _, err := l.AddSale("cocker", Male, Partner1, date.Date{}, 100, Cash); err != nil {
		t.Fatal(err)
	}
	if c := l.AvailableCounts()["cocker"]; c != (GenderCount{Males: 0, Females: 1}) {
		t.Errorf("cocker counts after sale = %+v", c)
	}
}

func TestRecipientPreview(t *testing.T) {
	// the preview shares the routing rule with AddSale and needs no inventory
	if got := Recipient(Partner1, Cash); got != Partner1 {
		t.Errorf("Recipient(1, cash) = %s", got)
	}
	if got := Recipient(Partner1, Card); got != Partner2 {
		t.Errorf("Recipient(1, card) = %s", got)
	}
	if got := Recipient(Partner2, Card); got != Partner1 {
		t.Errorf("Recipient(2, card) = %s", got)
	}
}
