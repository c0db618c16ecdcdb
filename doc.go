// Package supportbank implements the ingestion and ledger engine of the
// support bank: it normalizes transaction records read from CSV, JSON or
// XML files into a single canonical form, and maintains per-party account
// balances and histories derived from them.
//
// The aggregate root is the [Bank]. Callers feed it byte streams with a
// declared (or extension-inferred) [Format]; the Bank decodes the raw
// records, adapts each one into a [Transaction], and applies it to the two
// accounts it names, creating accounts on first reference. The full
// transaction log can be serialized back to the canonical CSV schema.
//
// The package is single threaded by contract: an embedding application
// exposing a Bank to multiple goroutines must serialize access itself.
package supportbank
