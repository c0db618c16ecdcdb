package supportbank

// Transaction is one normalized monetary movement from one account to
// another, whatever file format it came from.
//
// A Transaction is immutable once constructed. The bank's log and both
// endpoint accounts share the same instance by reference; nobody copies or
// mutates it. The sender/receiver names are kept in their original case;
// the bank resolves them case-insensitively.
type Transaction struct {
	date      Date
	from      string
	to        string
	narrative string
	amount    Money
	index     int // position in the originating batch, diagnostics only
}

// NewTransaction builds a transaction record from already-parsed values.
// Endpoint names are not validated here: manually built records and
// file-sourced records funnel through [Bank.Add], which rejects unnamed
// endpoints for both paths.
func NewTransaction(date Date, from, to, narrative string, amount Money) *Transaction {
	return &Transaction{date: date, from: from, to: to, narrative: narrative, amount: amount}
}

func (t *Transaction) Date() Date        { return t.date }
func (t *Transaction) From() string      { return t.from }
func (t *Transaction) To() string        { return t.to }
func (t *Transaction) Narrative() string { return t.narrative }
func (t *Transaction) Amount() Money     { return t.amount }

// Index returns the position of the record in the batch it was loaded
// from, or 0 for manually added records.
func (t *Transaction) Index() int { return t.index }
