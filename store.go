package moneytracker

import (
	"bytes"
	"fmt"
	"os"
	"slices"
)

// Store is where a Ledger reads and writes its items.
//
// Save always replaces the whole content of the store.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStore persists items as a JSON document in a single file.
type FileStore struct {
	Path string
}

// Load reads the whole file and decodes it.
func (s FileStore) Load() ([]Item, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	items, err := DecodeItems(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", s.Path, err)
	}
	return items, nil
}

// Save encodes items and overwrites the file with them.
func (s FileStore) Save(items []Item) error {
	var buf bytes.Buffer
	if err := EncodeItems(&buf, items); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %q: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps the last saved items in memory.
// Its zero value is an empty store.
type MemoryStore struct {
	items []Item
	Saves int // number of successful saves
	Err   error
}

// NewMemoryStore returns a store initialized with items.
func NewMemoryStore(items ...Item) *MemoryStore {
	return &MemoryStore{items: slices.Clone(items)}
}

func (s *MemoryStore) Load() ([]Item, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.items), nil
}

func (s *MemoryStore) Save(items []Item) error {
	if s.Err != nil {
		return s.Err
	}
	s.items = slices.Clone(items)
	s.Saves++
	return nil
}

// Items returns the items of the last save.
func (s *MemoryStore) Items() []Item { return slices.Clone(s.items) }
