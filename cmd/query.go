package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the ledger with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `mt query <jsonpath>

  Evaluates a JSONPath expression against the ledger document, the same
  JSON array as the ledger file, and prints the result as JSON.

Usage Examples:
$ mt query '$[*].title'
$ mt query '$[?(@.kind=="Expense")].amount'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one JSONPath expression")
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

	result, err := query(ctx, f.Arg(0), slices.Collect(ledger.Items()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, result)
	return subcommands.ExitSuccess
}

// query evaluates path on the JSON document of items, and returns the
// result as indented JSON.
func query(ctx context.Context, path string, items []moneytracker.Item) (string, error) {
	var buf bytes.Buffer
	if err := moneytracker.EncodeItems(&buf, items); err != nil {
		return "", err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return "", err
	}

	eval, err := jsonpath.New(path)
	if err != nil {
		return "", fmt.Errorf("invalid JSONPath %q: %w", path, err)
	}
	val, err := eval(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", path, err)
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
