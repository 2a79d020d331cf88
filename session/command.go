package session

import "fmt"

// Command is one entry of the main menu.
type Command int

// Commands in menu order.
const (
	AddItem Command = iota
	SortItems
	ShowIncome
	ShowExpenses
	EditOrDelete
	ExportItems
	Quit
)

// Commands lists every command in menu order.
var Commands = []Command{AddItem, SortItems, ShowIncome, ShowExpenses, EditOrDelete, ExportItems, Quit}

// String returns the menu label of the command.
func (c Command) String() string {
	switch c {
	case AddItem:
		return "Add New Item"
	case SortItems:
		return "Sort Items"
	case ShowIncome:
		return "Show Income Items"
	case ShowExpenses:
		return "Show Expense Items"
	case EditOrDelete:
		return "Edit or Delete Item"
	case ExportItems:
		return "Export Items"
	case Quit:
		return "Save and Quit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// labels returns the String of each element.
func labels[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
