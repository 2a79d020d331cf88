package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/console"
	"github.com/etnz/moneytracker/session"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run the interactive menu (default command)" }
func (*sessionCmd) Usage() string {
	return `mt session

  Runs the interactive money tracker: the ledger is displayed with its
  balance and a menu offers to add, sort, show incomes or expenses, edit or
  delete an item, export the items, and save and quit.

  This is the command run when mt is called without a subcommand.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (*sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return RunSession(ctx)
}

// RunSession runs an interactive session on the terminal.
func RunSession(ctx context.Context) subcommands.ExitStatus {
	cfg, err := Settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore(cfg.LedgerFile, cfg.BackendFor(cfg.LedgerFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	ui, err := console.New(os.Stdin, os.Stdout, console.Options{Currency: cfg.Currency, Style: cfg.Style})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ctl := session.New(moneytracker.NewLedger(store), ui, session.Options{
		Currency:   cfg.Currency,
		ExportName: cfg.ExportName,
	})
	if err := ctl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
