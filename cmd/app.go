// Package cmd implements the CLI application of the support bank.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/supportbank/supportbank"
)

// Commands lists every subcommand; a main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&loadCmd{},
	&saveCmd{},
	&addCmd{},
	&listCmd{},
	&summaryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application it is short lived, so globals for the app config are fine.

var ledgerFile = flag.String("ledger-file", "transactions.csv", "Path to the session ledger file (CSV)")

// DecodeBank loads the session bank from the ledger file. A missing file
// is a fresh session, not an error.
func DecodeBank() (*supportbank.Bank, error) {
	bank := supportbank.NewBank()

	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty bank instead")
		return bank, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	if err := bank.Load(f, supportbank.CSV); err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", *ledgerFile, err)
	}
	return bank, nil
}

// EncodeBank writes the session bank back to the ledger file.
func EncodeBank(bank *supportbank.Bank) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", *ledgerFile, err)
	}
	if err := bank.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write ledger file %q: %w", *ledgerFile, err)
	}
	return f.Close()
}
