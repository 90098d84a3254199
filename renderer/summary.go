package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/kennel"
	md "github.com/nao1215/markdown"
)

// Summary renders the per-breed inventory breakdown and the partner
// balances, the tool's home screen.
func Summary(l *kennel.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Kennel Summary")

	empty := true
	for breed := range kennel.AllBreeds() {
		s := l.SummaryByBreed(breed)
		if s.Total() == 0 {
			continue
		}
		empty = false
		doc.H2(kennel.BreedName(breed))
		doc.Table(md.TableSet{
			Header: []string{"♂ Males", "♀ Females", "P1", "P2"},
			Rows: [][]string{{
				fmt.Sprintf("%d", s.Males),
				fmt.Sprintf("%d", s.Females),
				fmt.Sprintf("%d", s.OwnedByPartner1),
				fmt.Sprintf("%d", s.OwnedByPartner2),
			}},
		})
	}
	if empty {
		doc.PlainText("No dogs in inventory.")
	}

	doc.H2("Balances")
	doc.Table(balancesTable(l.Balances(), l.Currency()))

	return doc.String()
}

// Balances renders the two partner balances and their derived total.
func Balances(b kennel.Balances, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Partner Balances")
	doc.Table(balancesTable(b, currency))
	return doc.String()
}

func balancesTable(b kennel.Balances, currency string) md.TableSet {
	return md.TableSet{
		Header: []string{"Partner 1", "Partner 2", "Total"},
		Rows: [][]string{{
			price(b.Partner1, currency),
			price(b.Partner2, currency),
			price(b.Total(), currency),
		}},
	}
}

// Available renders how many dogs of each breed and gender can be sold.
func Available(l *kennel.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Available for Sale")

	counts := l.AvailableCounts()
	var rows [][]string
	for breed := range kennel.AllBreeds() {
		c, ok := counts[breed]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			kennel.BreedName(breed),
			fmt.Sprintf("%d", c.Males),
			fmt.Sprintf("%d", c.Females),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("Nothing available for sale.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Breed", "♂ Males", "♀ Females"},
		Rows:   rows,
	})
	return doc.String()
}
