package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/kennel"
	"github.com/etnz/kennel/date"
)

func testLedger(t *testing.T) *kennel.Ledger {
	t.Helper()
	l := kennel.NewLedger()
	if _, err := l.AddDog("cocker", kennel.Male, date.MustParse("2025-01-01"), kennel.Partner1); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddDog("cocker", kennel.Female, date.Date{}, kennel.Partner2); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSummaryMentionsBreedAndBalances(t *testing.T) {
	l := testLedger(t)
	out := Summary(l)

	for _, want := range []string{"English Cocker Spaniel", "Partner 1", "Partner 2", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary misses %q:\n%s", want, out)
		}
	}
	// empty breeds do not get a section
	if strings.Contains(out, "Maltipoo") {
		t.Errorf("summary shows a breed with no dogs:\n%s", out)
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	out := Summary(kennel.NewLedger())
	if !strings.Contains(out, "No dogs in inventory.") {
		t.Errorf("empty summary:\n%s", out)
	}
}

func TestDogsListsIDs(t *testing.T) {
	l := testLedger(t)
	out := Dogs(l)
	if !strings.Contains(out, "♂") || !strings.Contains(out, "♀") {
		t.Errorf("gender symbols missing:\n%s", out)
	}
	if !strings.Contains(out, "unknown") {
		t.Errorf("unset birth date not shown as unknown:\n%s", out)
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	l := testLedger(t)
	if _, err := l.AddSale("cocker", kennel.Male, kennel.Partner1, date.MustParse("2025-05-01"), 100, kennel.Cash); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddSale("cocker", kennel.Female, kennel.Partner2, date.MustParse("2025-06-01"), 200, kennel.Card); err != nil {
		t.Fatal(err)
	}
	var sales []kennel.Sale
	for _, s := range l.Sales() {
		sales = append(sales, s)
	}
	out := History(sales, l.Currency())

	if strings.Index(out, "2025-06-01") > strings.Index(out, "2025-05-01") {
		t.Errorf("history not most recent first:\n%s", out)
	}
	if !strings.Contains(out, "2 sales") {
		t.Errorf("history total line missing:\n%s", out)
	}
}

func TestBalancesShowsTotal(t *testing.T) {
	out := Balances(kennel.Balances{Partner1: 1000, Partner2: 500}, "EUR")
	if !strings.Contains(out, "€1,500.00") {
		t.Errorf("derived total missing:\n%s", out)
	}
}

func TestAvailableSkipsEmptyBreeds(t *testing.T) {
	l := testLedger(t)
	out := Available(l)
	if !strings.Contains(out, "English Cocker Spaniel") {
		t.Errorf("available breed missing:\n%s", out)
	}
	if strings.Contains(out, "Maltipoo") {
		t.Errorf("empty breed listed:\n%s", out)
	}
}
