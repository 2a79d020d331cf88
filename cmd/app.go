// Package cmd implements the CLI application to manage a money tracker ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/config"
	"github.com/etnz/moneytracker/console"
	"github.com/etnz/moneytracker/sqlite"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "ledger")
	c.Register(&addCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&listCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&exportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultFile, "Path to the configuration file (YAML)")
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (.json, or .db for SQLite). Overrides the configuration")
var backend = flag.String("backend", "", "Storage backend (auto, json, sqlite). Overrides the configuration")
var currency = flag.String("currency", "", "Display currency (ISO 4217 code). Overrides the configuration")
var style = flag.String("style", "", "Markdown style (auto, dark, light, notty, raw). Overrides the configuration")

// Verbose enables the diagnostic log.
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// Settings returns the configuration, overridden by the global flags.
func Settings() (config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return cfg, err
	}
	for flagValue, field := range map[*string]*string{
		ledgerFile: &cfg.LedgerFile,
		backend:    &cfg.Backend,
		currency:   &cfg.Currency,
		style:      &cfg.Style,
	} {
		if *flagValue != "" {
			*field = *flagValue
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// OpenStore opens the store of a ledger file with the given backend.
// The returned function releases the store.
func OpenStore(path, backendName string) (moneytracker.Store, func() error, error) {
	switch backendName {
	case config.BackendSQLite:
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening ledger database %q: %w", path, err)
		}
		return s, s.Close, nil
	case config.BackendJSON:
		return &moneytracker.FileStore{Path: path}, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backendName)
	}
}

// OpenLedger opens and loads the configured ledger.
//
// A missing ledger file is an empty ledger. Unlike the interactive session,
// a malformed ledger is an error: commands must not overwrite it.
func OpenLedger(cfg config.Config) (*moneytracker.Ledger, func() error, error) {
	store, closeStore, err := OpenStore(cfg.LedgerFile, cfg.BackendFor(cfg.LedgerFile))
	if err != nil {
		return nil, nil, err
	}
	ledger := moneytracker.NewLedger(store)
	err = ledger.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger does not exist, starting with an empty ledger instead")
		err = nil
	}
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("error loading ledger %q: %w", cfg.LedgerFile, err)
	}
	return ledger, closeStore, nil
}

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// printMarkdown renders markdown to stdout in the configured style.
func printMarkdown(cfg config.Config, md string) {
	if cfg.Style == console.RawStyle {
		fmt.Fprint(stdout, md)
		return
	}
	opt := glamour.WithStylePath(cfg.Style)
	if cfg.Style == "" || cfg.Style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Println("warning, cannot render markdown:", err)
	fmt.Fprint(stdout, md)
}
