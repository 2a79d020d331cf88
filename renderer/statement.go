// Package renderer turns ledger views into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	md "github.com/nao1215/markdown"
)

// Title is the heading of every statement.
const Title = "Money Tracker"

// EmptyMessage replaces the tables of a statement without items.
const EmptyMessage = "No items to display."

// Section returns the section heading for a statement of this type.
func Section(kind moneytracker.ItemType) string {
	switch kind {
	case moneytracker.Income:
		return "Income Items"
	case moneytracker.Expense:
		return "Expense Items"
	default:
		return "All Transactions"
	}
}

// Statement renders st as markdown, amounts formatted in currency.
func Statement(st moneytracker.Statement, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(Title)
	doc.H2(Section(st.Type))

	if st.IsEmpty() {
		doc.PlainText(EmptyMessage)
		return doc.String()
	}

	rows := make([][]string, 0, len(st.Items))
	for _, item := range st.Items {
		rows = append(rows, []string{
			fmt.Sprint(item.ID),
			escapeCell(item.Title),
			item.FormatSigned(currency),
			date.Long(item.Date),
			item.Type.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Title", "Amount", "Date", "Type"},
		Rows:   rows,
	})

	label, total := "Total Balance", st.Balance
	switch st.Type {
	case moneytracker.Income:
		label = "Total Income"
		total = st.Total
	case moneytracker.Expense:
		label = "Total Expenses"
		total = st.Total.Neg()
	}
	doc.Table(md.TableSet{
		Header: []string{label, "Date Range"},
		Rows:   [][]string{{moneytracker.FormatBalance(total, currency), st.Span.String()}},
	})

	return doc.String()
}

// escapeCell keeps a pipe in free text from splitting a table cell.
func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
