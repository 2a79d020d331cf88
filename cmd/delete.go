package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an item" }
func (*deleteCmd) Usage() string {
	return `mt delete -id <id>

  Deletes the item with the given ID. Its ID will be given to the next
  item added.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the item to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
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
	if err := ledger.Delete(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Deleted item %d: %s\n", item.ID, item.Title)
	return subcommands.ExitSuccess
}
