// Package store provides SQLite-backed durable storage for todos.
//
// The store is a single table:
//
//	todos(id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT UNIQUE, done BOOLEAN)
//
// # Guarantees
//
//   - Ids are assigned on insert and never reused, even after deletion
//     (AUTOINCREMENT keeps a high-water mark in sqlite_sequence).
//   - Titles are unique; a duplicate insert returns ErrDuplicateTitle.
//   - Every read returns rows ORDER BY id ASC, the store-native order.
//   - Deletes and toggles report rows affected; zero is not an error.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - one open connection
//
// The store assumes a single process. Concurrent writers from other
// processes are not supported.
package store
