// Package renderer formats the ledger's derived views as markdown. It only
// consumes plain structured data from the kennel package; how the markdown
// reaches the user (terminal, file, chat) is the caller's concern.
package renderer

import (
	"github.com/etnz/kennel"
	"github.com/etnz/kennel/date"
)

func genderSymbol(g kennel.Gender) string {
	if g == kennel.Male {
		return "♂"
	}
	return "♀"
}

func partnerLabel(p kennel.Partner) string {
	if p == kennel.Partner1 {
		return "P1"
	}
	return "P2"
}

func price(units int64, currency string) string {
	return kennel.M(units, currency).String()
}

func birth(d date.Date) string {
	if d.IsZero() {
		return "unknown"
	}
	return d.String()
}
