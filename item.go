package moneytracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ItemType classifies an item as an income or an expense.
type ItemType string

const (
	Income  ItemType = "Income"
	Expense ItemType = "Expense"
)

// ItemTypes lists all valid item types.
var ItemTypes = []ItemType{Income, Expense}

// ParseItemType parses an item type token, case-insensitively.
func ParseItemType(s string) (ItemType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense", "expenses":
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, s)
	}
}

// IsValid reports whether t is one of the two item types.
func (t ItemType) IsValid() bool { return t == Income || t == Expense }

func (t ItemType) String() string { return string(t) }

func (t *ItemType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := ItemType(s)
	if !v.IsValid() {
		return fmt.Errorf("unknown item type %q", s)
	}
	*t = v
	return nil
}

// Item is one entry of the ledger.
//
// Amount is always a magnitude, the sign of the entry is given by Type.
type Item struct {
	ID     int
	Title  string
	Amount decimal.Decimal
	Date   time.Time
	Type   ItemType
}

// NewItem returns a validated item without an id. Only the Ledger assigns ids.
//
// The amount has at most 15 integer digits and 10 fraction digits.
func NewItem(title string, amount decimal.Decimal, date time.Time, kind ItemType) (Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, fmt.Errorf("%w: title is empty", ErrInvalidItem)
	}
	if !inRange(amount) {
		return Item{}, fmt.Errorf("%w: amount is out of range", ErrInvalidItem)
	}
	if amount.IsNegative() {
		return Item{}, fmt.Errorf("%w: amount %s is negative", ErrInvalidItem, amount)
	}
	if !kind.IsValid() {
		return Item{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidItem, kind)
	}
	return Item{Title: title, Amount: amount, Date: date, Type: kind}, nil
}

// Signed returns the item's contribution to the balance: +Amount for an
// income, -Amount for an expense.
func (i Item) Signed() decimal.Decimal {
	if i.Type == Expense {
		return i.Amount.Neg()
	}
	return i.Amount
}

// Split turns a signed amount into an item type and a magnitude.
// Positive amounts are incomes, anything else is an expense.
func Split(signed decimal.Decimal) (ItemType, decimal.Decimal) {
	if signed.IsPositive() {
		return Income, signed
	}
	return Expense, signed.Abs()
}

// MarshalJSON writes the item with a stable field order.
func (i Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("title", i.Title)
	w.Append("amount", json.Number(i.Amount.String()))
	w.Append("date", i.Date)
	w.Append("kind", i.Type)
	return w.MarshalJSON()
}

// UnmarshalJSON reads an item, every field is required.
func (i *Item) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID     *int             `json:"id"`
		Title  *string          `json:"title"`
		Amount *decimal.Decimal `json:"amount"`
		Date   *time.Time       `json:"date"`
		Kind   *ItemType        `json:"kind"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	var missing []string
	if temp.ID == nil {
		missing = append(missing, "id")
	}
	if temp.Title == nil {
		missing = append(missing, "title")
	}
	if temp.Amount == nil {
		missing = append(missing, "amount")
	}
	if temp.Date == nil {
		missing = append(missing, "date")
	}
	if temp.Kind == nil {
		missing = append(missing, "kind")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if *temp.ID <= 0 {
		return fmt.Errorf("%w: id %d is not positive", ErrInvalidItem, *temp.ID)
	}
	item, err := NewItem(*temp.Title, *temp.Amount, *temp.Date, *temp.Kind)
	if err != nil {
		return err
	}
	item.ID = *temp.ID
	*i = item
	return nil
}
