package moneytracker

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the authoritative collection of items and their balance.
//
// The balance always equals the sum of the signed contributions of the items.
// A Ledger is not safe for concurrent use, and two processes must not share
// the same store.
type Ledger struct {
	items   []Item // canonical order
	balance decimal.Decimal
	store   Store
}

// NewLedger creates an empty ledger persisted to store.
// A nil store gives an in-memory ledger.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		items:   make([]Item, 0),
		balance: decimal.Zero,
		store:   store,
	}
}

// Load replaces the items with the content of the store and recomputes the
// balance.
//
// On failure the ledger is reset to empty and the returned error wraps
// ErrLoadFailed and its cause. The ledger is usable in both cases.
func (l *Ledger) Load() error {
	l.items, l.balance = make([]Item, 0), decimal.Zero
	if l.store == nil {
		return nil
	}
	items, err := l.store.Load()
	if err == nil {
		err = checkIDs(items)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	l.items = slices.Clone(items)
	l.balance = sum(l.items)
	return nil
}

// checkIDs validates ids coming from any store.
func checkIDs(items []Item) error {
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			return fmt.Errorf("%w: id %d is not positive", ErrInvalidItem, item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidItem, item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// Save writes all items to the store. On failure the returned error wraps
// ErrSaveFailed and the in-memory state is kept.
func (l *Ledger) Save() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(slices.Clone(l.items)); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Add creates a new item from a signed amount, assigns it the lowest unused
// id, updates the balance and saves the ledger.
//
// An ErrInvalidItem leaves the ledger unchanged. An ErrSaveFailed means the
// item was added but not persisted.
func (l *Ledger) Add(title string, signed decimal.Decimal, date time.Time) (Item, error) {
	kind, amount := Split(signed)
	item, err := NewItem(title, amount, date, kind)
	if err != nil {
		return Item{}, err
	}
	item.ID = l.nextID()
	l.items = append(l.items, item)
	l.balance = l.balance.Add(item.Signed())
	return item, l.Save()
}

// nextID returns the lowest positive integer not used by an item.
func (l *Ledger) nextID() int {
	used := make(map[int]bool, len(l.items))
	for _, item := range l.items {
		used[item.ID] = true
	}
	id := 1
	for used[id] {
		id++
	}
	return id
}

// Edit overwrites the title, amount, type and date of the item with this id.
//
// The old contribution is removed from the balance and the new one added, so
// that a change of type is handled like any other change.
func (l *Ledger) Edit(id int, title string, signed decimal.Decimal, date time.Time) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	kind, amount := Split(signed)
	updated, err := NewItem(title, amount, date, kind)
	if err != nil {
		return err
	}
	updated.ID = id

	l.balance = l.balance.Sub(l.items[i].Signed())
	l.items[i] = updated
	l.balance = l.balance.Add(updated.Signed())
	return l.Save()
}

// Delete removes the item with this id.
func (l *Ledger) Delete(id int) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	l.balance = l.balance.Sub(l.items[i].Signed())
	l.items = slices.Delete(l.items, i, i+1)
	return l.Save()
}

// index returns the position of the item with this id, or -1.
func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.items, func(item Item) bool { return item.ID == id })
}

// Item returns the item with this id.
func (l *Ledger) Item(id int) (Item, bool) {
	i := l.index(id)
	if i < 0 {
		return Item{}, false
	}
	return l.items[i], true
}

// Items iterates over all items in the canonical order.
func (l *Ledger) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of items.
func (l *Ledger) Len() int { return len(l.items) }

// Balance returns the sum of the signed contributions of all items.
func (l *Ledger) Balance() decimal.Decimal { return l.balance }

// Filter iterates over the items of a given type. Each iteration is a fresh
// query over the current items.
func (l *Ledger) Filter(kind ItemType) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range l.items {
			if item.Type != kind {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Totals returns the sum of the magnitudes of the items of a given type.
func (l *Ledger) Totals(kind ItemType) decimal.Decimal {
	total := decimal.Zero
	for item := range l.Filter(kind) {
		total = total.Add(item.Amount)
	}
	return total
}

// Sorted returns the items ordered by key and direction, without changing
// the ledger.
func (l *Ledger) Sorted(key SortKey, dir Direction) []Item {
	return SortItems(l.Items(), key, dir)
}

// SortBy reorders the ledger items. The new order becomes the canonical
// order and is persisted on the next save.
func (l *Ledger) SortBy(key SortKey, dir Direction) {
	l.items = l.Sorted(key, dir)
}

// sum returns the sum of the signed contributions of items.
func sum(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Signed())
	}
	return total
}
