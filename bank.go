package supportbank

import (
	"errors"
	"io"
	"slices"
	"strings"
)

// Bank is the aggregate owning every account and the append-only
// transaction log.
//
// Accounts are indexed case-insensitively: "Alice A" and "alice a" resolve
// to the same account, displayed under whichever case was seen first.
// Every transaction in the log has been applied to exactly the two
// accounts it names and appears in both their histories.
type Bank struct {
	accounts     map[string]*Account // keyed by folded name
	transactions []*Transaction
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{accounts: make(map[string]*Account)}
}

// nameKey folds an account name for lookup. Display case is preserved in
// the Account itself.
func nameKey(name string) string { return strings.ToLower(name) }

// AccountExists reports whether an account resolves for name.
func (b *Bank) AccountExists(name string) bool {
	_, ok := b.accounts[nameKey(name)]
	return ok
}

// Account returns the account resolving for name, or an [*AccountError]
// wrapping [ErrAccountNotFound].
func (b *Bank) Account(name string) (*Account, error) {
	a, ok := b.accounts[nameKey(name)]
	if !ok {
		return nil, &AccountError{Name: name, Err: ErrAccountNotFound}
	}
	return a, nil
}

// CreateAccount creates an account under name, or returns an
// [*AccountError] wrapping [ErrAccountExists] if the name (in any case)
// is already taken.
func (b *Bank) CreateAccount(name string) (*Account, error) {
	if b.AccountExists(name) {
		return nil, &AccountError{Name: name, Err: ErrAccountExists}
	}
	a := newAccount(name)
	b.accounts[nameKey(name)] = a
	return a, nil
}

// account resolves name, creating the account on first reference.
func (b *Bank) account(name string) *Account {
	if a, ok := b.accounts[nameKey(name)]; ok {
		return a
	}
	a := newAccount(name)
	b.accounts[nameKey(name)] = a
	return a
}

// Add applies one transaction: it resolves or lazily creates both endpoint
// accounts, debits the sender, credits the receiver, and appends the
// record to the log. Every ingestion path, file batches and manual
// entry alike, funnels through here.
//
// A self-transfer is applied twice in sequence, once per side: net zero
// balance change, two history entries. That is a pass-through of whatever
// the source data says.
func (b *Bank) Add(tx *Transaction) error {
	if err := checkEndpoints(tx); err != nil {
		return err
	}
	sender := b.account(tx.From())
	receiver := b.account(tx.To())
	if err := sender.Debit(tx); err != nil {
		return err
	}
	if err := receiver.Credit(tx); err != nil {
		return err
	}
	b.transactions = append(b.transactions, tx)
	return nil
}

// checkEndpoints rejects records that do not name both parties. The check
// lives here rather than in the record constructor so that manually built
// records get it too.
func checkEndpoints(tx *Transaction) error {
	if tx.From() == "" || tx.To() == "" {
		return &TransactionError{
			Index: tx.Index(),
			From:  tx.From(),
			To:    tx.To(),
			Err:   errors.New("sender and receiver must both be named"),
		}
	}
	return nil
}

// Load decodes a whole transaction file from r in the given format and
// applies it. The batch is all-or-nothing: if any record fails to decode,
// adapt or validate, Load returns a [*LoadError] and no account state has
// been mutated. Records of a valid batch apply in file order.
func (b *Bank) Load(r io.Reader, format Format) error {
	txs, err := format.Decode(r)
	if err != nil {
		return &LoadError{Err: err}
	}
	// Validate the full batch before applying any of it. Endpoint naming is
	// the only way applying can fail, so checking it up front is what makes
	// the batch atomic.
	for _, tx := range txs {
		if err := checkEndpoints(tx); err != nil {
			return &LoadError{Err: err}
		}
	}
	for _, tx := range txs {
		if err := b.Add(tx); err != nil {
			// unreachable after the batch validation above
			return &LoadError{Err: err}
		}
	}
	return nil
}

// Save serializes the full transaction log, across every batch and manual
// entry of the session, to the canonical tabular format. Loading the
// output into a fresh bank reproduces the same transactions.
func (b *Bank) Save(w io.Writer) error {
	return EncodeCSV(w, b.transactions)
}

// Transactions returns the session transaction log in insertion order.
func (b *Bank) Transactions() []*Transaction {
	return slices.Clone(b.transactions)
}

// SummaryRow is one line of the all-accounts summary.
type SummaryRow struct {
	Name    string
	Balance Money
}

// Summary returns one row per account, sorted by display name.
func (b *Bank) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(b.accounts))
	for _, a := range b.accounts {
		rows = append(rows, SummaryRow{Name: a.Name(), Balance: a.Balance()})
	}
	slices.SortFunc(rows, func(x, y SummaryRow) int { return strings.Compare(x.Name, y.Name) })
	return rows
}
