package moneytracker

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a string constant.
func D(s string) decimal.Decimal { return MustParseAmount(s) }

// day is a helper for test to create a date at noon UTC.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.Add(12 * time.Hour)
}

// mustAdd adds an item or fails the test.
func mustAdd(t *testing.T, l *Ledger, title, signed, on string) Item {
	t.Helper()
	item, err := l.Add(title, D(signed), day(on))
	if err != nil {
		t.Fatalf("Add(%q, %s) returned an unexpected error: %v", title, signed, err)
	}
	return item
}

// checkBalance asserts the ledger balance and that it equals the sum of the
// signed contributions of its items.
func checkBalance(t *testing.T, l *Ledger, want string) {
	t.Helper()
	if got := l.Balance(); !got.Equal(D(want)) {
		t.Errorf("Balance() = %s, want %s", got, want)
	}
	total := decimal.Zero
	for item := range l.Items() {
		total = total.Add(item.Signed())
	}
	if !total.Equal(l.Balance()) {
		t.Errorf("Balance() = %s but items sum to %s", l.Balance(), total)
	}
}

// ids returns the ids of items in order.
func ids(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
