package moneytracker

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the item field used to order items.
type SortKey int

const (
	// ByID orders items by identifier.
	ByID SortKey = iota
	// ByTitle orders items by title, ignoring case.
	ByTitle
	// ByAmount orders items by signed amount: expenses count as negative.
	ByAmount
	// ByDate orders items chronologically.
	ByDate
)

// SortKeys lists all sort keys.
var SortKeys = []SortKey{ByID, ByTitle, ByAmount, ByDate}

func (k SortKey) String() string {
	switch k {
	case ByID:
		return "id"
	case ByTitle:
		return "title"
	case ByAmount:
		return "amount"
	case ByDate:
		return "date"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
}

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseDirection parses "asc", "ascending", "desc" or "descending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidInput, s)
	}
}

// SortItems returns a new slice with items ordered by key and direction.
//
// The sort is stable in both directions: items with equal keys keep their
// relative order.
func SortItems(items iter.Seq[Item], key SortKey, dir Direction) []Item {
	sorted := slices.Collect(items)
	cmp := comparator(key)
	if dir == Descending {
		asc := cmp
		cmp = func(a, b Item) int { return asc(b, a) }
	}
	slices.SortStableFunc(sorted, cmp)
	return sorted
}

func comparator(key SortKey) func(a, b Item) int {
	switch key {
	case ByTitle:
		col := collate.New(language.Und, collate.IgnoreCase)
		return func(a, b Item) int { return col.CompareString(a.Title, b.Title) }
	case ByAmount:
		return func(a, b Item) int { return a.Signed().Cmp(b.Signed()) }
	case ByDate:
		return func(a, b Item) int { return a.Date.Compare(b.Date) }
	default:
		return func(a, b Item) int { return a.ID - b.ID }
	}
}
