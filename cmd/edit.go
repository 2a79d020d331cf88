package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/google/subcommands"
)

type editCmd struct {
	id     int
	title  string
	amount string
	date   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an item" }
func (*editCmd) Usage() string {
	return `mt edit -id <id> [-title <title>] [-amount <signed amount>] [-d <date>]

  Edits the item with the given ID. Omitted fields keep their current value,
  except the date which is set to now unless -d is given.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the item to edit")
	f.StringVar(&c.title, "title", "", "New title")
	f.StringVar(&c.amount, "amount", "", "New signed amount, negative for an expense")
	f.StringVar(&c.date, "d", "", "New date (defaults to now)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	on := date.Now()
	if c.date != "" {
		var err error
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

	item, ok := ledger.Item(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v: id %d\n", moneytracker.ErrNotFound, c.id)
		return subcommands.ExitFailure
	}
	title, signed := item.Title, item.Signed()
	if strings.TrimSpace(c.title) != "" {
		title = c.title
	}
	if c.amount != "" {
		if signed, err = moneytracker.ParseAmount(c.amount); err != nil || signed.IsZero() {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", c.amount)
			return subcommands.ExitUsageError
		}
	}

	if err := ledger.Edit(c.id, title, signed, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing item: %v\n", err)
		return subcommands.ExitFailure
	}
	item, _ = ledger.Item(c.id)
	fmt.Fprintf(stdout, "Edited item %d: %s %s\n", item.ID, item.Title, item.FormatSigned(cfg.Currency))
	return subcommands.ExitSuccess
}
