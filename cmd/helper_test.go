package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/moneytracker/config"
	"github.com/etnz/moneytracker/date"
	"github.com/google/subcommands"
)

// setup points the global flags to a ledger in a fresh temporary folder and
// captures the standard output of the commands.
func setup(t *testing.T, ledger string) (string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, env := range []string{config.EnvLedgerFile, config.EnvBackend, config.EnvCurrency, config.EnvExportName, config.EnvStyle} {
		t.Setenv(env, "")
	}
	t.Setenv(date.TestingNowEnv, "2025-06-01 12:00:00")

	path := filepath.Join(dir, ledger)
	override(t, ledgerFile, path)
	override(t, configFile, filepath.Join(dir, "missing.yaml"))
	override(t, backend, "")
	override(t, currency, "USD")
	override(t, style, "raw")

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return path, &buf
}

// override sets a global flag for the duration of the test.
func override(t *testing.T, p *string, value string) {
	t.Helper()
	old := *p
	*p = value
	t.Cleanup(func() { *p = old })
}

// run executes a command with args, as the commander would.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: failed to parse %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// day returns noon of a day, in UTC.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.Add(12 * time.Hour)
}
