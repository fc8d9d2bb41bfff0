package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/tally-sh/tally"
)

// EquitiesMarkdown renders the live brokerage positions table with its total
// equity line.
func EquitiesMarkdown(s *tally.EquitiesSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Brokerage Positions")
	if s == nil || len(s.Positions) == 0 {
		doc.PlainText("No open stock positions found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.Positions)+1)
	for _, p := range s.Positions {
		rows = append(rows, []string{p.Symbol, qty(p.Quantity), p.Price.String(), p.Equity.String()})
	}
	rows = append(rows, []string{"TOTAL", "", "", s.TotalEquity.String()})

	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Quantity", "Price", "Equity"},
		Rows:   rows,
	})
	return doc.String()
}

// CashMarkdown renders the cash balance table.
func CashMarkdown(balance tally.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Cash")
	doc.Table(md.TableSet{
		Header: []string{"Currency", "Balance"},
		Rows:   [][]string{{balance.Currency(), balance.String()}},
	})
	return doc.String()
}
