package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save all session transactions to a CSV file" }
func (*saveCmd) Usage() string {
	return `sbk save <file>

  Writes every transaction of the session, file loads and manual entries
  alike, to a CSV file in the canonical schema. The output loads back
  without loss.

`
}

func (*saveCmd) SetFlags(_ *flag.FlagSet) {}

func (*saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "save needs exactly one output file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	bank, err := DecodeBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	if err := bank.Save(out); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "cannot save to %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot save to %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved %d transactions to %s\n", len(bank.Transactions()), path)
	return subcommands.ExitSuccess
}
