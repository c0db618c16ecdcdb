package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/supportbank/supportbank"
)

// StatementMarkdown renders one account's statement: the current balance
// followed by the movements in date order, each against its counterparty.
func StatementMarkdown(a *supportbank.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account %s", a.Name()))
	doc.PlainText(fmt.Sprintf("Balance: %s", Balance(a.Balance())))

	rows := a.Statement()
	if len(rows) == 0 {
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Counterparty", "Narrative", "Amount"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.Counterparty,
			row.Narrative,
			signedAmount(row.Amount),
		})
	}
	doc.Table(table)

	return doc.String()
}
