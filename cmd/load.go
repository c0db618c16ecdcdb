package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/supportbank/supportbank"
)

type loadCmd struct {
	format string
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "load transaction files into the session ledger" }
func (*loadCmd) Usage() string {
	return `sbk load [-format csv|json|xml] <file>...

  Reads each transaction file into the session ledger. The format is
  inferred from the file extension unless -format forces one. A file
  either loads completely or not at all: one malformed row rejects the
  whole file and leaves the ledger untouched.

`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Force the file format instead of inferring it from the extension.")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "load needs at least one transaction file")
		return subcommands.ExitUsageError
	}

	bank, err := DecodeBank()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, path := range f.Args() {
		format, err := c.formatFor(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}

		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		err = bank.Load(file, format)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot load %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Loaded %s (%v)\n", path, format)
	}

	if err := EncodeBank(bank); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Session has %d transactions across %d accounts\n",
		len(bank.Transactions()), len(bank.Summary()))
	return subcommands.ExitSuccess
}

// formatFor resolves the effective format of one file.
func (c *loadCmd) formatFor(path string) (supportbank.Format, error) {
	switch c.format {
	case "":
		return supportbank.FormatFromPath(path), nil
	case "csv":
		return supportbank.CSV, nil
	case "json":
		return supportbank.JSON, nil
	case "xml":
		return supportbank.XML, nil
	default:
		return 0, fmt.Errorf("unknown format %q, want csv, json or xml", c.format)
	}
}
