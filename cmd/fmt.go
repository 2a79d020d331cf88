package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output  string
	backend string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger in canonical form, or copies it to another file"
}
func (*fmtCmd) Usage() string {
	return `mt fmt [-o <file>] [-o-backend auto|json|sqlite]

  Validates the ledger and writes it back in its canonical form.
  With -o, the items are copied into another ledger file instead, possibly
  with another backend: this is how a JSON ledger is moved to SQLite and
  back. The backend of the output follows its extension unless -o-backend
  is set.

Usage Examples:
$ mt fmt
$ mt fmt -o items.db
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output ledger file. Rewrites the ledger in place by default")
	f.StringVar(&c.backend, "o-backend", "auto", "Backend of the output file (auto, json, sqlite)")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := Settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, closeLedger, err := OpenLedger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeLedger()

	if c.output == "" {
		if err := ledger.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Ledger file '%s' has been formatted.\n", cfg.LedgerFile)
		return subcommands.ExitSuccess
	}

	out := cfg
	out.Backend = c.backend
	if err := out.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore(c.output, out.BackendFor(c.output))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Save(slices.Collect(ledger.Items())); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v: %v\n", c.output, moneytracker.ErrSaveFailed, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Copied %d items to '%s'.\n", ledger.Len(), c.output)
	return subcommands.ExitSuccess
}
