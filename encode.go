package moneytracker

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeItems decodes a JSON document holding an array of items.
//
// The whole document is rejected if any record is incomplete or invalid, or
// if two records share an id. A null document is an empty list.
func DecodeItems(r io.Reader) ([]Item, error) {
	var items []Item
	dec := json.NewDecoder(r)
	if err := dec.Decode(&items); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("could not decode items: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the items array")
	}
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate item id %d", item.ID)
		}
		seen[item.ID] = true
	}
	return items, nil
}

// EncodeItems writes items as an indented JSON array, in their given order.
func EncodeItems(w io.Writer, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}
