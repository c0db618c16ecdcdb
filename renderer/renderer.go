// Package renderer turns the bank's in-memory reports into markdown,
// ready for a terminal markdown renderer or a plain pager.
package renderer

import (
	"github.com/supportbank/supportbank"
)

// Balance formats a balance in accounting style: negative balances are
// parenthesized instead of signed.
func Balance(m supportbank.Money) string {
	if m.IsNegative() {
		return "(" + m.Neg().String() + ")"
	}
	return m.String()
}

// signedAmount formats a statement movement with an explicit direction.
func signedAmount(m supportbank.Money) string {
	if m.IsNegative() {
		return m.Neg().String() + " out"
	}
	return m.String() + " in"
}
