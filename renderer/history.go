package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/kennel"
	md "github.com/nao1215/markdown"
)

// History renders sales most recent first, the way the owners read it:
// "what did we sell lately, and who got the money".
func History(sales []kennel.Sale, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Sales History")

	if len(sales) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}

	var total int64
	rows := make([][]string, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		s := sales[i]
		total += s.Price
		rows = append(rows, []string{
			s.Date.String(),
			kennel.BreedName(s.Breed),
			genderSymbol(s.Gender),
			birth(s.BirthDate),
			partnerLabel(s.Seller),
			price(s.Price, currency),
			string(s.Payment),
			partnerLabel(s.MoneyRecipient),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Breed", "Gender", "Born", "Seller", "Price", "Payment", "To"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d sales, %s in total.", len(sales), price(total, currency)))
	return doc.String()
}
