package kennel

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		value int64
		cur   string
		want  string
	}{
		{value: 1500, cur: "EUR", want: "€1,500.00"},
		{value: 0, cur: "EUR", want: "€0.00"},
		{value: -250, cur: "EUR", want: "-€250.00"},
		{value: 35000, cur: "RUB", want: "35,000.00 ₽"},
		// JPY has no minor unit
		{value: 1500, cur: "JPY", want: "¥1,500"},
	}
	for _, tc := range testCases {
		if got := M(tc.value, tc.cur).String(); got != tc.want {
			t.Errorf("M(%d, %s).String() = %q, want %q", tc.value, tc.cur, got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
	if got := M(10, "EUR").SignedString(); got != "+€10.00" {
		t.Errorf("positive = %q", got)
	}
}

func TestMoneyDefaultsCurrency(t *testing.T) {
	if got := M(1, "").Currency(); got != DefaultCurrency {
		t.Errorf("empty currency = %q, want %q", got, DefaultCurrency)
	}
}
