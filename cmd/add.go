package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/supportbank/supportbank"
)

type addCmd struct {
	date      string
	from      string
	to        string
	narrative string
	amount    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append one manual transaction to the session ledger" }
func (*addCmd) Usage() string {
	return `sbk add -from <name> -to <name> -amount <decimal> [-date DD/MM/YYYY] [-narrative <text>]

  Appends a single transaction, creating accounts on first reference,
  exactly as a loaded file row would.

Usage Example:
$ sbk add -from "Alice A" -to "Bob B" -amount 12.50 -narrative Lunch

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date as DD/MM/YYYY (defaults to today).")
	f.StringVar(&c.from, "from", "", "Sending account name.")
	f.StringVar(&c.to, "to", "", "Receiving account name.")
	f.StringVar(&c.narrative, "narrative", "", "Free-text narrative, may be empty.")
	f.StringVar(&c.amount, "amount", "", "Amount as a plain decimal numeral.")
}

func (c *addCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date := supportbank.Today()
	if c.date != "" {
		var err error
		date, err = supportbank.ParseDate(c.date, supportbank.LayoutCSV)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	amount, err := supportbank.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	bank, err := DecodeBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := supportbank.NewTransaction(date, c.from, c.to, c.narrative, amount)
	if err := bank.Add(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := EncodeBank(bank); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s -> %s %s on %s\n", tx.From(), tx.To(), tx.Amount(), tx.Date())
	return subcommands.ExitSuccess
}
