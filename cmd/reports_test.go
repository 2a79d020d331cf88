package cmd

import (
	"context"
	"flag"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

func TestExport(t *testing.T) {
	_, out := setup(t, "items.json")
	run(t, &addCmd{}, "-title", "Salary", "-amount", "5000", "-d", "2025-01-31")
	run(t, &addCmd{}, "-title", "Rent", "-amount", "-1000", "-d", "2025-02-01")

	out.Reset()
	if status := run(t, &exportCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("export = %v, want ExitSuccess", status)
	}
	if got, want := out.String(), "Exported 2 items to saved_items.txt\n"; got != want {
		t.Errorf("export printed %q, want %q", got, want)
	}
	got, err := os.ReadFile("saved_items.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := "ID\tTitle\tAmount\tDate\tType\n" +
		"------------------------------------------------\n" +
		"1\tSalary\t$5,000.00\t2025-01-31\tIncome\n" +
		"2\tRent\t$1,000.00\t2025-02-01\tExpense\n"
	if string(got) != want {
		t.Errorf("export wrote\n%q\nwant\n%q", got, want)
	}

	for _, format := range []string{"xlsx", "pdf"} {
		if status := run(t, &exportCmd{}, "-f", format, "-o", "march"); status != subcommands.ExitSuccess {
			t.Errorf("export -f %s = %v, want ExitSuccess", format, status)
		}
		if _, err := os.Stat("march." + format); err != nil {
			t.Errorf("export -f %s did not write march.%s: %v", format, format, err)
		}
	}
	if status := run(t, &exportCmd{}, "-f", "csv"); status != subcommands.ExitUsageError {
		t.Errorf("export -f csv = %v, want ExitUsageError", status)
	}
}

func TestQuery(t *testing.T) {
	l := moneytracker.NewLedger(nil)
	l.Add("Salary", moneytracker.MustParseAmount("5000"), day("2025-01-31"))
	l.Add("Rent", moneytracker.MustParseAmount("-1000.5"), day("2025-02-01"))
	items := slices.Collect(l.Items())

	testCases := []struct {
		path string
		want string
	}{
		{`$[*].title`, "[\n  \"Salary\",\n  \"Rent\"\n]"},
		{`$[?(@.kind=="Expense")].amount`, "[\n  1000.5\n]"},
		{`$[0].id`, "1"},
	}
	for _, tc := range testCases {
		got, err := query(context.Background(), tc.path, items)
		if err != nil {
			t.Fatalf("query(%q) returned an unexpected error: %v", tc.path, err)
		}
		if got != tc.want {
			t.Errorf("query(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
	if _, err := query(context.Background(), "$[", items); err == nil {
		t.Error("query() accepted an invalid expression")
	}
}

func TestQueryCmd(t *testing.T) {
	_, out := setup(t, "items.json")
	run(t, &addCmd{}, "-title", "Salary", "-amount", "5000")
	out.Reset()
	if status := run(t, &queryCmd{}, "$[*].kind"); status != subcommands.ExitSuccess {
		t.Fatalf("query = %v, want ExitSuccess", status)
	}
	if got := out.String(); !strings.Contains(got, `"Income"`) {
		t.Errorf("query printed %q", got)
	}
	if status := run(t, &queryCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("query without expression = %v, want ExitUsageError", status)
	}
}

func TestTopic(t *testing.T) {
	_, out := setup(t, "items.json")
	if status := run(t, &topicCmd{}, "session"); status != subcommands.ExitSuccess {
		t.Fatalf("topic session = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out.String(), "Save and Quit") {
		t.Errorf("topic session printed:\n%s", out.String())
	}
	if status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("topic nope = %v, want ExitFailure", status)
	}

	out.Reset()
	if status := run(t, &topicCmd{}, "-l"); status != subcommands.ExitSuccess {
		t.Fatalf("topic -l = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out.String(), "* `storage`: Storage") {
		t.Errorf("topic -l printed:\n%s", out.String())
	}
}

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("mt", flag.ContinueOnError), "mt")
	commander.Register(commander.HelpCommand(), "help")
	Register(commander)

	global := flag.NewFlagSet("mt", flag.ContinueOnError)
	global.String("ledger-file", "", "")
	global.Bool("v", false, "")

	c := Completion(commander, global)
	for _, name := range []string{"session", "add", "edit", "delete", "list", "fmt", "export", "query", "topic", "help"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion has no %q subcommand", name)
		}
	}
	if _, ok := c.Flags["ledger-file"]; !ok {
		t.Error("completion has no global -ledger-file flag")
	}
	if got := c.Sub["export"].Flags["f"].Predict(""); !slices.Equal(got, []string{"text", "xlsx", "pdf"}) {
		t.Errorf("export -f predicts %q", got)
	}
	if got := c.Sub["list"].Flags["k"].Predict(""); !slices.Equal(got, []string{"all", "income", "expense"}) {
		t.Errorf("list -k predicts %q", got)
	}
	if got := c.Sub["list"].Flags["order"].Predict(""); !slices.Equal(got, []string{"asc", "desc"}) {
		t.Errorf("list -order predicts %q", got)
	}
	if got := c.Sub["topic"].Flags["l"].Predict(""); len(got) != 0 {
		t.Errorf("boolean flag -l predicts %q", got)
	}
	if got := c.Sub["topic"].Args.Predict(""); !slices.Contains(got, "session") {
		t.Errorf("topic predicts %q", got)
	}
}
