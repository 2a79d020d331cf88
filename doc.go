// Package moneytracker provides the types and functions for keeping a
// personal ledger of dated income and expense entries. It is designed to be
// local-first: the whole ledger lives in a single human-readable file that
// the user owns.
//
// The core functionalities include:
//   - Entity Model: an Item is one dated entry with a title, a magnitude and
//     an ItemType (Income or Expense). The sign of an entry is never stored in
//     its amount, only in its type.
//   - Ledger: the authoritative collection of items together with a running
//     balance that always equals the sum of every item's signed contribution.
//     Items are added, edited and deleted only through the Ledger, which
//     assigns identifiers and persists itself after every change.
//   - Queries: filtering by type, totals per type, and stable sorting by
//     identifier, title, signed amount or date.
//   - Data Persistence: encoding and decoding the ledger to and from a JSON
//     document through the Store interface.
//
// This package serves as the foundational logic for the `mt` command-line
// tool and its interactive session.
package moneytracker
