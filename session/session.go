// Package session implements the interactive menu loop of the money tracker.
//
// A Controller owns a ledger for the duration of a session. It shows the
// ledger, asks the UI for one command, runs it and starts over until the
// user quits. Every ledger error is reported to the user and the loop goes
// on; only the end of the user input stops it early.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/report"
)

// Options configures a Controller.
type Options struct {
	Currency   string           // display currency, defaults to moneytracker.DefaultCurrency
	ExportName string           // default export file name, without extension
	Now        func() time.Time // clock used to date new and edited items
}

// Controller runs an interactive session over a ledger.
type Controller struct {
	ledger *moneytracker.Ledger
	ui     UI
	opts   Options
}

// New creates a controller for ledger, interacting through ui.
func New(ledger *moneytracker.Ledger, ui UI, opts Options) *Controller {
	if opts.Currency == "" {
		opts.Currency = moneytracker.DefaultCurrency
	}
	if opts.ExportName == "" {
		opts.ExportName = report.DefaultName
	}
	if opts.Now == nil {
		opts.Now = date.Now
	}
	return &Controller{ledger: ledger, ui: ui, opts: opts}
}

// Run loads the ledger and runs the menu loop until the user quits.
//
// The ledger is saved before Run returns. Run returns nil when the user
// quits or the input ends, ctx.Err() when ctx is cancelled, and the UI error
// otherwise.
func (c *Controller) Run(ctx context.Context) error {
	c.load()
	for {
		if err := ctx.Err(); err != nil {
			c.save()
			return err
		}
		if err := c.ui.Show(c.ledger.Statement("")); err != nil {
			return c.end(err)
		}
		i, err := c.ui.Choose("Select an option:", labels(Commands))
		if err != nil {
			return c.end(err)
		}
		if i < 0 || i >= len(Commands) {
			c.ui.Notify(Warning, fmt.Sprintf("Invalid selection %d.", i))
			continue
		}
		cmd := Commands[i]
		if cmd == Quit {
			c.save()
			return nil
		}
		if err := c.Execute(cmd); err != nil {
			return c.end(err)
		}
		if err := c.ui.Pause(); err != nil {
			return c.end(err)
		}
	}
}

// end saves the ledger and filters the normal end of input.
func (c *Controller) end(err error) error {
	c.save()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// load hydrates the ledger. A failure leaves an empty but usable ledger.
func (c *Controller) load() {
	err := c.ledger.Load()
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Println("no ledger file yet, starting empty")
		c.ui.Notify(Info, "No saved items found, starting with an empty ledger.")
	default:
		log.Println("warning, starting with an empty ledger:", err)
		c.ui.Notify(Warning, fmt.Sprintf("Error loading items: %v. Starting with an empty ledger.", err))
	}
}

// save persists the ledger and reports a failure.
func (c *Controller) save() {
	if err := c.ledger.Save(); err != nil {
		log.Println("save failed:", err)
		c.ui.Notify(Failure, fmt.Sprintf("Error saving items: %v", err))
		return
	}
	c.ui.Notify(Success, fmt.Sprintf("Saved %d items.", c.ledger.Len()))
}

// Execute runs a single command. Quit only saves the ledger.
//
// Errors from the ledger are reported through the UI; the returned error is
// always an input error from the UI.
func (c *Controller) Execute(cmd Command) error {
	switch cmd {
	case AddItem:
		return c.add()
	case SortItems:
		return c.sort()
	case ShowIncome:
		return c.ui.Show(c.ledger.Statement(moneytracker.Income))
	case ShowExpenses:
		return c.ui.Show(c.ledger.Statement(moneytracker.Expense))
	case EditOrDelete:
		return c.editOrDelete()
	case ExportItems:
		return c.export()
	case Quit:
		c.save()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %v", moneytracker.ErrInvalidInput, cmd)
	}
}

// report translates a ledger error into a message. It returns true when err
// is nil.
func (c *Controller) report(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, moneytracker.ErrNotFound):
		c.ui.Notify(Warning, "Item not found.")
	case errors.Is(err, moneytracker.ErrInvalidItem):
		c.ui.Notify(Warning, fmt.Sprintf("Invalid item: %v", err))
	case errors.Is(err, moneytracker.ErrSaveFailed):
		log.Println("save failed:", err)
		c.ui.Notify(Failure, fmt.Sprintf("The change was applied but not saved: %v", err))
	default:
		c.ui.Notify(Failure, err.Error())
	}
	return false
}
