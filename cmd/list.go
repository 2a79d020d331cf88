package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	kind  string
	sort  string
	order string
	from  string
	to    string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the items and the balance" }
func (*listCmd) Usage() string {
	return `mt list [-k all|income|expense] [-s id|title|amount|date] [-order asc|desc] [-from <date>] [-to <date>]

  Displays the items of the ledger with the balance, or with the total of
  the incomes or the expenses. Sorting here only changes the display, the
  ledger order is unchanged.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "all", "Kind of items to display (all, income, expense)")
	f.StringVar(&c.sort, "s", "", "Sort key (id, title, amount, date). Ledger order by default")
	f.StringVar(&c.order, "order", "asc", "Sort direction (asc, desc)")
	f.StringVar(&c.from, "from", "", "Display items on or after this date")
	f.StringVar(&c.to, "to", "", "Display items on or before this date")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var kind moneytracker.ItemType
	if !strings.EqualFold(c.kind, "all") {
		k, err := moneytracker.ParseItemType(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		kind = k
	}
	span, err := parseSpan(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	items := slices.Collect(ledger.Items())
	if c.sort != "" {
		key, err := moneytracker.ParseSortKey(c.sort)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		dir, err := moneytracker.ParseDirection(c.order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		items = ledger.Sorted(key, dir)
	}
	items = slices.DeleteFunc(items, func(item moneytracker.Item) bool {
		return (kind != "" && item.Type != kind) || !span.Contains(item.Date)
	})

	st := moneytracker.NewStatement(kind, items, ledger.Balance())
	printMarkdown(cfg, renderer.Statement(st, cfg.Currency))
	return subcommands.ExitSuccess
}

// parseSpan parses optional range boundaries, both days included.
func parseSpan(from, to string) (date.Range, error) {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = date.Parse(from); err != nil {
			return date.Range{}, err
		}
	}
	if to == "" {
		return date.Range{From: start}, nil
	}
	if end, err = date.Parse(to); err != nil {
		return date.Range{}, err
	}
	return date.NewRange(start, end), nil
}
