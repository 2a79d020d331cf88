// Package sqlite stores a ledger in an SQLite database instead of a JSON
// file. The database holds exactly the same information as the file: the
// items in their canonical order.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// Store is a moneytracker.Store backed by an SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

var _ moneytracker.Store = (*Store)(nil)

// Open opens (or creates) the database at path and migrates its schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %q: %w", path, err)
	}
	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns all items in their canonical order.
func (s *Store) Load() ([]moneytracker.Item, error) {
	rows, err := s.db.Query(`SELECT id, title, amount, date, kind FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []moneytracker.Item
	for rows.Next() {
		var (
			id                        int
			title, amount, date, kind string
		)
		if err := rows.Scan(&id, &title, &amount, &date, &kind); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item, err := decodeRow(id, title, amount, date, kind)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", id, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}

func decodeRow(id int, title, amount, date, kind string) (moneytracker.Item, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return moneytracker.Item{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	on, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return moneytracker.Item{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	item, err := moneytracker.NewItem(title, d, on, moneytracker.ItemType(kind))
	if err != nil {
		return moneytracker.Item{}, err
	}
	item.ID = id
	return item, nil
}

// Save replaces the content of the items table in a single transaction.
func (s *Store) Save(items []moneytracker.Item) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO items (id, position, title, amount, date, kind) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		_, err = stmt.Exec(item.ID, i, item.Title, item.Amount.String(), item.Date.Format(time.RFC3339Nano), string(item.Type))
		if err != nil {
			return fmt.Errorf("insert item %d: %w", item.ID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
