package kennel

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/kennel/date"
)

// This file handles imports from the web application this tool replaces.
// That app kept its whole state under one localStorage key, and users bring
// it here as a JSON dump: sometimes the raw value, sometimes wrapped in
// whatever envelope their browser's export produced. The import is therefore
// tolerant about shape (jsonpath lookup wherever the collections are) and
// about the legacy short enum forms ("1"/"2" partners).

// ImportLedger reads a legacy export from r and builds a Ledger out of it.
//
// Record ids from the export (millisecond timestamps) are kept when unique,
// otherwise reassigned. Unknown breed codes are registered as-is so they at
// least display their code.
func ImportLedger(r io.Reader) (*Ledger, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import: %w", err)
	}
	var jobj interface{}
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("import is not valid JSON: %w", err)
	}

	l := NewLedger()

	dogs, _ := lookup(jobj, "dogs")
	for i, entry := range dogs {
		dog, err := importDog(entry)
		if err != nil {
			return nil, fmt.Errorf("dog entry %d: %w", i, err)
		}
		if dog.ID <= 0 || !idFree(l, dog.ID) {
			dog.ID = l.allocateID()
		} else {
			l.seenID(dog.ID)
		}
		l.dogs = append(l.dogs, dog)
	}

	sales, _ := lookup(jobj, "sales")
	for i, entry := range sales {
		sale, err := importSale(entry)
		if err != nil {
			return nil, fmt.Errorf("sale entry %d: %w", i, err)
		}
		if sale.ID <= 0 || !idFree(l, sale.ID) {
			sale.ID = l.allocateID()
		} else {
			l.seenID(sale.ID)
		}
		l.sales = append(l.sales, sale)
	}

	// The legacy app persisted the balances rather than recomputing them, so
	// the import does too: they are part of the exported state.
	if v, err := jsonpath.Get("$..balances.partner1", jobj); err == nil {
		l.balances.Partner1 = firstInt(v)
	}
	if v, err := jsonpath.Get("$..balances.partner2", jobj); err == nil {
		l.balances.Partner2 = firstInt(v)
	}
	return l, nil
}

// lookup finds the named top-level collection, wherever the envelope put it.
func lookup(jobj interface{}, name string) ([]interface{}, error) {
	jval, err := jsonpath.Get("$.."+name, jobj)
	if err != nil {
		return nil, fmt.Errorf("no %q collection in import: %w", name, err)
	}
	// jsonpath is never clear about whether it returns a list of answers or
	// a single one, so deal with both.
	matches, ok := jval.([]interface{})
	if !ok || len(matches) == 0 {
		return nil, nil
	}
	if items, ok := matches[0].([]interface{}); ok {
		return items, nil
	}
	// A single-match recursive query may already be the collection itself.
	return matches, nil
}

func importDog(entry interface{}) (Dog, error) {
	m, ok := entry.(map[string]interface{})
	if !ok {
		return Dog{}, fmt.Errorf("%w: not an object", ErrInvalidInput)
	}
	gender, err := ParseGender(str(m, "gender"))
	if err != nil {
		return Dog{}, err
	}
	owner, err := ParsePartner(str(m, "owner"))
	if err != nil {
		return Dog{}, err
	}
	breed := Breed(str(m, "breed"))
	ensureBreed(breed)
	birth, err := importDate(m, "birthDate")
	if err != nil {
		return Dog{}, err
	}
	return Dog{
		ID:        integer(m, "id"),
		Breed:     breed,
		Gender:    gender,
		BirthDate: birth,
		Owner:     owner,
	}, nil
}

func importSale(entry interface{}) (Sale, error) {
	m, ok := entry.(map[string]interface{})
	if !ok {
		return Sale{}, fmt.Errorf("%w: not an object", ErrInvalidInput)
	}
	gender, err := ParseGender(str(m, "gender"))
	if err != nil {
		return Sale{}, err
	}
	seller, err := ParsePartner(str(m, "seller"))
	if err != nil {
		return Sale{}, err
	}
	payment, err := ParsePayment(str(m, "payment"))
	if err != nil {
		return Sale{}, err
	}
	price := integer(m, "price")
	if price < 0 {
		return Sale{}, fmt.Errorf("%w: negative price %d", ErrInvalidInput, price)
	}
	breed := Breed(str(m, "breed"))
	ensureBreed(breed)
	on, err := importDate(m, "date")
	if err != nil {
		return Sale{}, err
	}
	birth, err := importDate(m, "birthDate")
	if err != nil {
		return Sale{}, err
	}

	// The recipient was derived at sale time by the same routing policy;
	// prefer the recorded value, derive only when the export lacks it.
	recipient := Recipient(seller, payment)
	if s := str(m, "moneyRecipient"); s != "" {
		recipient, err = ParsePartner(s)
		if err != nil {
			return Sale{}, err
		}
	}

	return Sale{
		ID:             integer(m, "id"),
		Date:           on,
		Breed:          breed,
		Gender:         gender,
		BirthDate:      birth,
		Seller:         seller,
		Price:          price,
		Payment:        payment,
		MoneyRecipient: recipient,
	}, nil
}

func importDate(m map[string]interface{}, key string) (date.Date, error) {
	s := str(m, key)
	if s == "" {
		return date.Date{}, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return d, nil
}

func str(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func integer(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

func firstInt(v interface{}) int64 {
	switch t := v.(type) {
	case []interface{}:
		if len(t) == 0 {
			return 0
		}
		return firstInt(t[0])
	case float64:
		return int64(t)
	default:
		return 0
	}
}

func idFree(l *Ledger, id int64) bool {
	for _, d := range l.dogs {
		if d.ID == id {
			return false
		}
	}
	for _, s := range l.sales {
		if s.ID == id {
			return false
		}
	}
	return true
}
