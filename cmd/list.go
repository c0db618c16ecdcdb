package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/supportbank/supportbank/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list one account's statement, or all balances" }
func (*listCmd) Usage() string {
	return `sbk list <name>|all

  Prints the statement of the named account: its balance and every
  movement in date order. 'list all' prints the summary of every
  account instead.

`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "list needs an account name, or 'all'")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	bank, err := DecodeBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if strings.EqualFold(name, "all") {
		printMarkdown(renderer.SummaryMarkdown(bank.Summary()))
		return subcommands.ExitSuccess
	}

	account, err := bank.Account(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatementMarkdown(account))
	return subcommands.ExitSuccess
}
