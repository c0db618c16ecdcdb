package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/supportbank/supportbank"
)

// SummaryMarkdown renders the all-accounts summary as a markdown table,
// one row per account in name order.
func SummaryMarkdown(rows []supportbank.SummaryRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts Summary")

	if len(rows) == 0 {
		doc.PlainText("No accounts. Load a transaction file first.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Balance"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{row.Name, Balance(row.Balance)})
	}
	doc.Table(table)

	return doc.String()
}
