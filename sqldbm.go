package sqldbm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver
)

// Mode selects how Open treats the database file at the target path.
type Mode int

const (
	// ModeOpen opens an existing database for reading and writing.
	// Open fails if the file does not exist.
	ModeOpen Mode = iota

	// ModeOpenCreate opens for reading and writing, creating the
	// database file if absent. Existing content is preserved.
	ModeOpenCreate

	// ModeOpenCreateNew deletes any file already at the target path,
	// then creates a fresh, empty database. The deletion is
	// irreversible.
	ModeOpenCreateNew

	// ModeReadOnly opens an existing database strictly for reads; any
	// mutating statement fails at the engine.
	ModeReadOnly
)

// String returns the mode name as accepted by the CLI.
func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeOpenCreate:
		return "create"
	case ModeOpenCreateNew:
		return "create-new"
	case ModeReadOnly:
		return "read-only"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// uriMode returns the SQLite URI mode parameter for m.
func (m Mode) uriMode() string {
	switch m {
	case ModeOpenCreate, ModeOpenCreateNew:
		return "rwc"
	case ModeReadOnly:
		return "ro"
	default:
		return "rw"
	}
}

// DB is a handle on one SQLite-backed key/value database file. The
// handle owns the underlying connection; Table views borrow it and
// become unusable once the handle is closed.
type DB struct {
	db   *sql.DB
	path string
	mode Mode

	mu     sync.Mutex
	closed bool
	tables map[string]*Table
}

// Open opens the database file at path according to mode.
//
// Under ModeOpenCreateNew any pre-existing file at path is deleted
// before the connection is established. Callers should defer Close on
// the returned handle so the connection is released on every exit path.
func Open(path string, mode Mode) (*DB, error) {
	switch mode {
	case ModeOpen, ModeReadOnly:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("opening database %s: %w", path, err)
		}
	case ModeOpenCreateNew:
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("removing existing database %s: %w", path, err)
		}
	}

	// SQLite URIs always use forward slashes, regardless of the host
	// path separator.
	dsn := fmt.Sprintf("file:%s?mode=%s&_pragma=busy_timeout(5000)",
		filepath.ToSlash(path), mode.uriMode())
	if mode != ModeReadOnly {
		dsn += "&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	// database/sql connects lazily; ping so mode errors surface here
	// rather than on the first statement.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	return &DB{
		db:     db,
		path:   path,
		mode:   mode,
		tables: make(map[string]*Table),
	}, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Mode returns the mode the handle was opened with.
func (db *DB) Mode() Mode {
	return db.mode
}

// tableNameRE restricts table names to plain identifiers, since
// identifiers cannot be bound parameters and are spliced into SQL text.
var tableNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Table returns the view for the named table, creating its backing
// schema on first use. Calling Table twice with the same name returns
// the same view; the cache lives for the life of the handle.
func (db *DB) Table(ctx context.Context, name string) (*Table, error) {
	if !tableNameRE.MatchString(name) {
		return nil, fmt.Errorf("table %q: %w", name, ErrInvalidTable)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil, ErrClosed
	}
	if t, ok := db.tables[name]; ok {
		return t, nil
	}

	ddl := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (Key TEXT PRIMARY KEY UNIQUE NOT NULL, Value BLOB)`, name),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %q ON %q (Key)`, name+"_key", name),
	}
	for _, stmt := range ddl {
		if _, err := db.db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("creating table %s: %w", name, err)
		}
	}

	t := &Table{db: db, name: name}
	db.tables[name] = t
	return t, nil
}

// Sync flushes pending writes into the main database file without
// closing the handle. Under ModeReadOnly there is nothing to flush and
// Sync is a no-op.
func (db *DB) Sync(ctx context.Context) error {
	conn, err := db.conn()
	if err != nil {
		return err
	}
	if db.mode == ModeReadOnly {
		return nil
	}

	if err := checkpoint(ctx, conn); err != nil {
		return fmt.Errorf("syncing database: %w", err)
	}
	return nil
}

// Close flushes pending writes and releases the connection. Every view
// derived from this handle becomes unusable: all subsequent operations,
// including a second Close, return ErrClosed.
func (db *DB) Close() error {
	db.mu.Lock()
	if db.closed {
		db.mu.Unlock()
		return ErrClosed
	}
	db.closed = true
	db.tables = nil
	db.mu.Unlock()

	if db.mode != ModeReadOnly {
		// Best effort: the connection is released even if the final
		// checkpoint fails.
		_ = checkpoint(context.Background(), db.db)
	}
	if err := db.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// conn returns the shared connection pool, or ErrClosed after Close.
func (db *DB) conn() (*sql.DB, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil, ErrClosed
	}
	return db.db, nil
}

// checkpoint moves all WAL frames into the main database file. The
// pragma returns a result row, so it is read rather than executed.
func checkpoint(ctx context.Context, conn *sql.DB) error {
	var busy, logFrames, moved int
	row := conn.QueryRowContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)")
	return row.Scan(&busy, &logFrames, &moved)
}
