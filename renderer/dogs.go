package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/kennel"
	md "github.com/nao1215/markdown"
)

// Dogs renders the current inventory, one row per dog in insertion order.
// The id column is what delete-dog takes.
func Dogs(l *kennel.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Dogs in Inventory")

	var rows [][]string
	for _, d := range l.Dogs() {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.ID),
			kennel.BreedName(d.Breed),
			genderSymbol(d.Gender),
			birth(d.BirthDate),
			partnerLabel(d.Owner),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No dogs in inventory.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Breed", "Gender", "Born", "Owner"},
		Rows:   rows,
	})
	return doc.String()
}
