package supportbank

import (
	"errors"
	"fmt"
)

// Sentinel errors of the closed domain taxonomy. Richer errors in this
// package wrap one of these, so callers can classify failures with
// [errors.Is] without string matching.
var (
	// ErrInvalidAmount reports a textual amount that is not a well-formed decimal numeral.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate reports a textual date that does not match its layout or names no real calendar day.
	ErrInvalidDate = errors.New("invalid date")
	// ErrAccountNotFound reports a lookup for an account the bank has never seen.
	ErrAccountNotFound = errors.New("account does not exist")
	// ErrAccountExists reports an attempt to create an account under a name already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountMismatch reports a transaction routed to an account that is
	// neither its sender nor its receiver. This is an internal invariant
	// violation, not a user error.
	ErrAccountMismatch = errors.New("account is neither sender nor receiver")
)

// TransactionError reports a raw record that could not be adapted into a
// Transaction, with enough batch context to locate the offending row.
type TransactionError struct {
	Index int    // position of the record in the originating batch
	From  string // sender as it appeared in the raw record, may be empty
	To    string // receiver as it appeared in the raw record, may be empty
	Err   error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %d (%s -> %s): %v", e.Index, e.From, e.To, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// AccountError reports a failure scoped to a single named account.
type AccountError struct {
	Name string
	Err  error
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("account %q: %v", e.Name, e.Err)
}

func (e *AccountError) Unwrap() error { return e.Err }

// LoadError reports a batch load that was rejected as a whole. The bank
// guarantees that no account state was mutated when a LoadError is returned.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load failed: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
