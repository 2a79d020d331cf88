package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/moneytracker/report"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the items to a text, spreadsheet or PDF file" }
func (*exportCmd) Usage() string {
	return `mt export [-f text|xlsx|pdf] [-o <name>]

  Writes all the items in ledger order to <name>.txt, <name>.xlsx or
  <name>.pdf. The name defaults to the configured export name.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", "text", "Export format (text, xlsx, pdf)")
	f.StringVar(&c.output, "o", "", "Output file name, without extension")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := report.ParseFormat(c.format)
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

	name := c.output
	if name == "" {
		name = cfg.ExportName
	}
	path, err := report.WriteFile(name, format, slices.Collect(ledger.Items()), cfg.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported %d items to %s\n", ledger.Len(), path)
	return subcommands.ExitSuccess
}
