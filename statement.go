package moneytracker

import (
	"slices"

	"github.com/etnz/moneytracker/date"
	"github.com/shopspring/decimal"
)

// Statement is a read-only view of the ledger, ready to be rendered.
type Statement struct {
	Type    ItemType        // "" for all items
	Items   []Item          // in display order
	Balance decimal.Decimal // ledger balance
	Total   decimal.Decimal // sum of magnitudes of Items when Type is set
	Span    date.Range      // oldest to newest item date
}

// NewStatement builds a statement of items. When kind is set, items are
// expected to be of that kind and their total is computed.
func NewStatement(kind ItemType, items []Item, balance decimal.Decimal) Statement {
	st := Statement{
		Type:    kind,
		Items:   items,
		Balance: balance,
		Total:   decimal.Zero,
	}
	for i, item := range items {
		if kind != "" {
			st.Total = st.Total.Add(item.Amount)
		}
		if i == 0 || item.Date.Before(st.Span.From) {
			st.Span.From = item.Date
		}
		if i == 0 || item.Date.After(st.Span.To) {
			st.Span.To = item.Date
		}
	}
	return st
}

// Statement returns a view of all the items, or of the items of one type
// when kind is not empty.
func (l *Ledger) Statement(kind ItemType) Statement {
	if kind == "" {
		return NewStatement(kind, slices.Collect(l.Items()), l.balance)
	}
	st := NewStatement(kind, slices.Collect(l.Filter(kind)), l.balance)
	st.Total = l.Totals(kind)
	return st
}

// IsEmpty reports whether the statement has no items.
func (s Statement) IsEmpty() bool { return len(s.Items) == 0 }
