// Package sqldbm provides a dbm-style persistent key/value store backed
// by SQLite.
//
// This package uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. A database file
// holds one or more named tables, each a flat mapping from string keys
// to byte values. Every operation issues a single parameterized SQL
// statement; durability, locking and on-disk format are delegated
// entirely to SQLite.
//
// # Usage
//
//	db, err := sqldbm.Open("app.db", sqldbm.ModeOpenCreate)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	data, err := db.Table(ctx, "data")
//	if err != nil {
//		return err
//	}
//	if err := data.Put(ctx, "greeting", []byte("hello world")); err != nil {
//		return err
//	}
//
// # Open modes
//
// ModeOpen and ModeReadOnly require the database file to exist.
// ModeOpenCreate creates it if absent and preserves existing content.
// ModeOpenCreateNew deletes any file already at the path before creating
// a fresh database; the deletion is irreversible, so treat that mode as
// destructive.
//
// # Schema
//
// Each table is created on first use as
//
//	CREATE TABLE IF NOT EXISTS <name> (Key TEXT PRIMARY KEY UNIQUE NOT NULL, Value BLOB)
//
// plus an index on Key. There is no versioning metadata; the schema is
// re-derived idempotently on each open. Table names are spliced into the
// DDL (identifiers cannot be bound parameters) and are therefore
// restricted to plain identifiers and treated as trusted input.
//
// # Concurrency
//
// A handle adds no coordination of its own: operations are synchronous,
// no statement handle outlives its call, and cross-process access to the
// same file gets exactly the isolation SQLite provides (WAL mode). The
// handle owns the connection; tables borrow it and become unusable once
// the handle is closed.
package sqldbm
