package session

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/report"
)

func (c *Controller) add() error {
	title, err := c.ui.Ask("Enter title:")
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		c.ui.Notify(Warning, "Title cannot be empty.")
		return nil
	}
	raw, err := c.ui.Ask("Enter amount (negative for an expense):")
	if err != nil {
		return err
	}
	amount, err := moneytracker.ParseAmount(raw)
	if err != nil {
		c.ui.Notify(Warning, fmt.Sprintf("Invalid input: %q is not a valid amount.", strings.TrimSpace(raw)))
		return nil
	}
	if amount.IsZero() {
		c.ui.Notify(Warning, "Amount cannot be zero.")
		return nil
	}

	item, err := c.ledger.Add(title, amount, c.opts.Now())
	if err == nil || errors.Is(err, moneytracker.ErrSaveFailed) {
		c.ui.Notify(Success, fmt.Sprintf("Added new item: %s (%s)", item.Title, item.FormatSigned(c.opts.Currency)))
	}
	c.report(err)
	return nil
}

const goBack = "Go Back"

func (c *Controller) sort() error {
	keys := make([]string, 0, len(moneytracker.SortKeys)+1)
	for _, k := range moneytracker.SortKeys {
		keys = append(keys, "Sort by "+sortLabel(k))
	}
	keys = append(keys, goBack)
	i, err := c.ui.Choose("Select a sorting option:", keys)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(moneytracker.SortKeys) {
		return nil
	}
	key := moneytracker.SortKeys[i]

	directions := []moneytracker.Direction{moneytracker.Ascending, moneytracker.Descending}
	j, err := c.ui.Choose("Select sorting direction:", []string{"Ascending", "Descending"})
	if err != nil {
		return err
	}
	if j < 0 || j >= len(directions) {
		return nil
	}
	dir := directions[j]

	c.ledger.SortBy(key, dir)
	c.ui.Notify(Success, fmt.Sprintf("Items sorted by %s, %s.", strings.ToLower(sortLabel(key)), dir))
	return c.ui.Show(c.ledger.Statement(""))
}

func sortLabel(k moneytracker.SortKey) string {
	if k == moneytracker.ByID {
		return "ID"
	}
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c *Controller) editOrDelete() error {
	raw, err := c.ui.Ask("Enter ID of item to edit or delete:")
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.ui.Notify(Warning, fmt.Sprintf("Invalid input: %q is not an item ID.", strings.TrimSpace(raw)))
		return nil
	}
	item, ok := c.ledger.Item(id)
	if !ok {
		c.ui.Notify(Warning, "Item not found.")
		return nil
	}

	actions := []string{"Edit", "Delete", goBack}
	i, err := c.ui.Choose(fmt.Sprintf("Would you like to edit or delete %q?", item.Title), actions)
	if err != nil {
		return err
	}
	switch i {
	case 0:
		return c.edit(item)
	case 1:
		return c.delete(item)
	}
	return nil
}

func (c *Controller) edit(item moneytracker.Item) error {
	c.ui.Notify(Info, "Current Title: "+item.Title)
	title, err := c.ui.Ask("Enter new title (leave blank to keep current):")
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		title = item.Title
	}

	c.ui.Notify(Info, "Current Amount: "+item.FormatSigned(c.opts.Currency))
	raw, err := c.ui.Ask("Enter new amount (leave blank to keep current):")
	if err != nil {
		return err
	}
	signed := item.Signed()
	if strings.TrimSpace(raw) != "" {
		amount, err := moneytracker.ParseAmount(raw)
		if err != nil || amount.IsZero() {
			c.ui.Notify(Warning, fmt.Sprintf("Invalid input: %q is not a valid amount, keeping the current amount.", strings.TrimSpace(raw)))
		} else {
			signed = amount
		}
	}

	err = c.ledger.Edit(item.ID, title, signed, c.opts.Now())
	if err == nil || errors.Is(err, moneytracker.ErrSaveFailed) {
		c.ui.Notify(Success, "Edited item: "+strings.TrimSpace(title))
	}
	c.report(err)
	return nil
}

func (c *Controller) delete(item moneytracker.Item) error {
	answer, err := c.ui.Ask(fmt.Sprintf("Are you sure you want to delete the item '%s'? (yes/no)", item.Title))
	if err != nil {
		return err
	}
	if !slices.Contains([]string{"yes", "y"}, strings.ToLower(strings.TrimSpace(answer))) {
		c.ui.Notify(Info, "Deletion canceled.")
		return nil
	}
	err = c.ledger.Delete(item.ID)
	if err == nil || errors.Is(err, moneytracker.ErrSaveFailed) {
		c.ui.Notify(Success, "Deleted item: "+item.Title)
	}
	c.report(err)
	return nil
}

func (c *Controller) export() error {
	name, err := c.ui.Ask(fmt.Sprintf("Enter a file name (leave blank for %q):", c.opts.ExportName))
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		name = c.opts.ExportName
	}
	path, err := report.WriteFile(name, report.Text, slices.Collect(c.ledger.Items()), c.opts.Currency)
	if err != nil {
		c.ui.Notify(Failure, fmt.Sprintf("Error writing to file: %v", err))
		return nil
	}
	c.ui.Notify(Success, fmt.Sprintf("Exported %d items to %s", c.ledger.Len(), path))
	return nil
}
