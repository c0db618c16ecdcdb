package supportbank

import (
	"slices"
	"strings"
)

// Account accumulates the balance and transaction history of one named
// party. Accounts are created by the [Bank] the first time a name is seen
// and live for the whole session.
//
// Invariant: the balance always equals the signed sum over the history,
// counting credits positive and debits negative.
type Account struct {
	name    string // display case of the first sighting
	balance Money
	history []*Transaction
}

func newAccount(name string) *Account { return &Account{name: name} }

// Name returns the account name in the case it was first seen.
func (a *Account) Name() string { return a.name }

// Balance returns the current signed balance.
func (a *Account) Balance() Money { return a.balance }

// History returns the transactions applied to this account, in insertion
// order. A self-transfer appears twice, once per side.
func (a *Account) History() []*Transaction { return slices.Clone(a.history) }

// Process applies the transaction to whichever side of it this account is
// on: debit if sender, credit if receiver. It returns an [*AccountError]
// wrapping [ErrAccountMismatch] if the account is neither.
//
// For a self-transfer, Process alone would see only the sending side; the
// bank applies those by calling [Account.Debit] then [Account.Credit]
// explicitly, netting the balance to zero with two history entries.
func (a *Account) Process(tx *Transaction) error {
	if a.isNamed(tx.From()) {
		return a.Debit(tx)
	}
	if a.isNamed(tx.To()) {
		return a.Credit(tx)
	}
	return &AccountError{Name: a.name, Err: ErrAccountMismatch}
}

// Debit applies tx as its sending side: the balance decreases by the
// amount and the record joins the history.
func (a *Account) Debit(tx *Transaction) error {
	if !a.isNamed(tx.From()) {
		return &AccountError{Name: a.name, Err: ErrAccountMismatch}
	}
	a.balance = a.balance.Sub(tx.Amount())
	a.history = append(a.history, tx)
	return nil
}

// Credit applies tx as its receiving side: the balance increases by the
// amount and the record joins the history.
func (a *Account) Credit(tx *Transaction) error {
	if !a.isNamed(tx.To()) {
		return &AccountError{Name: a.name, Err: ErrAccountMismatch}
	}
	a.balance = a.balance.Add(tx.Amount())
	a.history = append(a.history, tx)
	return nil
}

// isNamed reports whether name resolves to this account. Resolution is
// case-insensitive, display is not.
func (a *Account) isNamed(name string) bool { return strings.EqualFold(a.name, name) }

// StatementRow is one line of an account statement.
type StatementRow struct {
	Date         Date
	Counterparty string // the other side of the movement
	Narrative    string
	Amount       Money // negative when this account sent the money
}

// Statement returns the account history as statement rows sorted by date,
// ties broken by insertion order.
func (a *Account) Statement() []StatementRow {
	// A self-transfer shares one record between its two history entries;
	// the first entry is the debit since the bank debits before crediting.
	seen := make(map[*Transaction]int)

	rows := make([]StatementRow, 0, len(a.history))
	for _, tx := range a.history {
		row := StatementRow{Date: tx.Date(), Narrative: tx.Narrative()}
		self := a.isNamed(tx.From()) && a.isNamed(tx.To())
		switch {
		case self && seen[tx] == 0:
			seen[tx]++
			row.Counterparty = tx.To()
			row.Amount = tx.Amount().Neg()
		case self:
			row.Counterparty = tx.From()
			row.Amount = tx.Amount()
		case a.isNamed(tx.From()):
			row.Counterparty = tx.To()
			row.Amount = tx.Amount().Neg()
		default:
			row.Counterparty = tx.From()
			row.Amount = tx.Amount()
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(rows, func(x, y StatementRow) int { return x.Date.Compare(y.Date) })
	return rows
}
