// Package sqlite persists lookup history in a local SQLite database.
//
// The adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory, applied on open.
//
// # Data Location
//
// By default, the database is stored at ~/.eligo/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on database-level
// locking provided by SQLite in WAL mode.
package sqlite
