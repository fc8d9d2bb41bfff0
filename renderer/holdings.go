package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/tally-sh/tally"
)

// CryptoMarkdown renders the cryptocurrency holdings table. Cost and P&L
// columns are omitted when showCostBasis is false.
func CryptoMarkdown(holdings []tally.CryptoHolding, showCostBasis bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Cryptocurrency Holdings")
	if len(holdings) == 0 {
		doc.PlainText("No crypto holdings found.")
		return doc.String()
	}

	header := []string{"Name", "Quantity", "Current Price", "Value"}
	if showCostBasis {
		header = []string{"Name", "Quantity", "Avg Cost", "Current Price", "Value", "P&L"}
	}

	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		if showCostBasis {
			gain, pct, ok := h.UnrealizedGain()
			rows = append(rows, []string{
				h.Name, qty(h.Quantity), costOrNA(h.AverageCost),
				h.CurrentPrice.String(), h.Value().String(), gainCell(gain, pct, ok),
			})
		} else {
			rows = append(rows, []string{
				h.Name, qty(h.Quantity), h.CurrentPrice.String(), h.Value().String(),
			})
		}
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

// HardAssetsMarkdown renders the hard assets table, precious metals first.
func HardAssetsMarkdown(assets []tally.HardAsset, showCostBasis bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Hard Assets")
	if len(assets) == 0 {
		doc.PlainText("No hard assets found.")
		return doc.String()
	}

	header := []string{"Asset", "Quantity", "Unit", "Spot Price", "Value"}
	if showCostBasis {
		header = []string{"Asset", "Quantity", "Unit", "Avg Cost", "Spot Price", "Value", "P&L"}
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		if showCostBasis {
			gain, pct, ok := a.UnrealizedGain()
			rows = append(rows, []string{
				a.Name, qty(a.Quantity), a.Unit, costOrNA(a.AverageCost),
				a.SpotPrice.String(), a.Value().String(), gainCell(gain, pct, ok),
			})
		} else {
			rows = append(rows, []string{
				a.Name, qty(a.Quantity), a.Unit, a.SpotPrice.String(), a.Value().String(),
			})
		}
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}
