package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	title  string
	amount string
	date   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an income or an expense" }
func (*addCmd) Usage() string {
	return `mt add -title <title> -amount <signed amount> [-d <date>]

  Adds an item to the ledger. A positive amount is an income, a negative
  amount an expense. The item gets the lowest unused ID.

Usage Examples:
$ mt add -title Salary -amount 5000
$ mt add -title Rent -amount -1000 -d 2025-02-01
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the item")
	f.StringVar(&c.amount, "amount", "", "Signed amount, negative for an expense")
	f.StringVar(&c.date, "d", "", "Date of the item (defaults to now)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := moneytracker.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if amount.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: amount cannot be zero")
		return subcommands.ExitUsageError
	}
	on := date.Now()
	if c.date != "" {
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

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

	item, err := ledger.Add(c.title, amount, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added item %d: %s %s\n", item.ID, item.Title, item.FormatSigned(cfg.Currency))
	return subcommands.ExitSuccess
}
