package moneytracker

import "errors"

// Error kinds reported by the ledger. They are always wrapped with more
// context, use errors.Is to test for them.
var (
	// ErrInvalidItem reports an item field violation (blank title, negative amount, unknown type).
	ErrInvalidItem = errors.New("invalid item")
	// ErrNotFound reports an operation on an unknown item id.
	ErrNotFound = errors.New("item not found")
	// ErrLoadFailed reports that the ledger could not be read from its store.
	// The ledger is empty after such a failure.
	ErrLoadFailed = errors.New("could not load ledger")
	// ErrSaveFailed reports that the ledger could not be written to its store.
	// The in-memory state is kept as is.
	ErrSaveFailed = errors.New("could not save ledger")
	// ErrInvalidInput reports unparsable user input (amount, id, selection).
	ErrInvalidInput = errors.New("invalid input")
)
