package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tally-sh/tally"
)

// SummaryMarkdown renders the portfolio overview: one row per category with
// a positive subtotal, heaviest allocation first, plus the grand total.
func SummaryMarkdown(v *tally.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Overview")

	if len(v.Breakdown) == 0 {
		doc.PlainText("No portfolio data found. Add your holdings:")
		doc.BulletList(
			"`tly crypto add` - add crypto holdings",
			"`tly assets add` - add hard assets",
			"`tly cash update` - record a cash balance",
		)
		return doc.String()
	}

	rows := make([][]string, 0, len(v.Breakdown)+1)
	for _, row := range v.Breakdown {
		rows = append(rows, []string{
			row.Category.String(),
			fmt.Sprintf("%d", row.Holdings),
			row.Value.String(),
			row.Weight.String(),
		})
	}
	rows = append(rows, []string{"TOTAL", "", v.Total.String(), "100.0%"})

	doc.Table(md.TableSet{
		Header: []string{"Asset Type", "Holdings", "Value", "Allocation"},
		Rows:   rows,
	})
	return doc.String()
}
