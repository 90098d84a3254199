package kennel

import (
	"strings"
	"testing"

	"github.com/etnz/kennel/date"
)

// legacyExport is a dump of the localStorage key of the web app this tool
// replaces: short partner codes, millisecond-timestamp ids.
const legacyExport = `{
  "dogs": [
    {"id": 1716800000001, "breed": "cocker", "gender": "male", "birthDate": "2024-03-15", "owner": "1"},
    {"id": 1716800000002, "breed": "maltipoo", "gender": "female", "birthDate": "", "owner": "2"}
  ],
  "sales": [
    {"id": 1716900000001, "date": "2024-06-01", "breed": "cocker", "gender": "female",
     "birthDate": "2024-01-10", "seller": "1", "price": 35000, "payment": "card", "moneyRecipient": "2"}
  ],
  "balances": {"partner1": 0, "partner2": 35000}
}`

func TestImportLegacyExport(t *testing.T) {
	l, err := ImportLedger(strings.NewReader(legacyExport))
	if err != nil {
		t.Fatalf("ImportLedger: %v", err)
	}

	if l.DogCount() != 2 {
		t.Fatalf("imported %d dogs, want 2", l.DogCount())
	}
	var first Dog
	for _, d := range l.Dogs() {
		first = d
		break
	}
	if first.ID != 1716800000001 {
		t.Errorf("unique legacy id not kept: %d", first.ID)
	}
	if first.Owner != Partner1 {
		t.Errorf("legacy owner \"1\" = %s, want partner1", first.Owner)
	}
	if first.BirthDate != date.MustParse("2024-03-15") {
		t.Errorf("birth date = %s", first.BirthDate)
	}

	if l.SaleCount() != 1 {
		t.Fatalf("imported %d sales, want 1", l.SaleCount())
	}
	for _, s := range l.Sales() {
		if s.Seller != Partner1 || s.MoneyRecipient != Partner2 || s.Price != 35000 || s.Payment != Card {
			t.Errorf("sale imported wrong: %+v", s)
		}
	}

	if b := l.Balances(); b.Partner1 != 0 || b.Partner2 != 35000 {
		t.Errorf("balances imported wrong: %+v", b)
	}
	// the conservation invariant carries over from the legacy data
	if l.TotalBalance() != 35000 {
		t.Errorf("total balance = %d", l.TotalBalance())
	}
}

func TestImportWrappedExport(t *testing.T) {
	// some browser export tools wrap the value in an envelope
	wrapped := `{"localStorage": {"dogSalesData": ` + legacyExport + `}}`
	l, err := ImportLedger(strings.NewReader(wrapped))
	if err != nil {
		t.Fatalf("ImportLedger(wrapped): %v", err)
	}
	if l.DogCount() != 2 || l.SaleCount() != 1 || l.TotalBalance() != 35000 {
		t.Errorf("wrapped export not found: %d dogs, %d sales, total %d",
			l.DogCount(), l.SaleCount(), l.TotalBalance())
	}
}

func TestImportReassignsDuplicateIDs(t *testing.T) {
	doc := `{"dogs": [
	  {"id": 5, "breed": "cocker", "gender": "male", "owner": "1"},
	  {"id": 5, "breed": "cocker", "gender": "female", "owner": "1"}
	]}`
	l, err := ImportLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ImportLedger: %v", err)
	}
	seen := make(map[int64]bool)
	for _, d := range l.Dogs() {
		if seen[d.ID] {
			t.Fatalf("duplicate id %d after import", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestImportRegistersUnknownBreeds(t *testing.T) {
	doc := `{"dogs": [{"id": 1, "breed": "samoyed", "gender": "male", "owner": "2"}]}`
	if _, err := ImportLedger(strings.NewReader(doc)); err != nil {
		t.Fatalf("ImportLedger: %v", err)
	}
	if BreedName("samoyed") != "samoyed" {
		t.Errorf("unknown breed not registered")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	if _, err := ImportLedger(strings.NewReader("not json")); err == nil {
		t.Errorf("garbage accepted")
	}
	if _, err := ImportLedger(strings.NewReader(`{"dogs": [{"gender": "x", "owner": "1", "breed": "cocker"}]}`)); err == nil {
		t.Errorf("invalid gender accepted")
	}
}
