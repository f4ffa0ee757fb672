package sqldbm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Table is a view over one named key/value namespace within a handle's
// database file. Views borrow the handle's connection and never close
// it themselves; obtain one via DB.Table.
type Table struct {
	db   *DB
	name string
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Has reports whether key exists in the table.
func (t *Table) Has(ctx context.Context, key string) (bool, error) {
	conn, err := t.db.conn()
	if err != nil {
		return false, err
	}

	var count int
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %q WHERE Key = ?`, t.name)
	if err := conn.QueryRowContext(ctx, q, key).Scan(&count); err != nil {
		return false, fmt.Errorf("checking key in %s: %w", t.name, err)
	}
	return count == 1, nil
}

// Len returns the number of records in the table.
func (t *Table) Len(ctx context.Context) (int64, error) {
	conn, err := t.db.conn()
	if err != nil {
		return 0, err
	}

	var count int64
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %q`, t.name)
	if err := conn.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records in %s: %w", t.name, err)
	}
	return count, nil
}

// Get returns the value stored under key, or nil if the key is absent.
// A missing key is not an error; use Has to distinguish a missing key
// from a stored empty value.
func (t *Table) Get(ctx context.Context, key string) ([]byte, error) {
	conn, err := t.db.conn()
	if err != nil {
		return nil, err
	}

	var value []byte
	q := fmt.Sprintf(`SELECT Value FROM %q WHERE Key = ?`, t.name)
	if err := conn.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading key from %s: %w", t.name, err)
	}
	return value, nil
}

// Put inserts the record, or overwrites the value if key already
// exists.
func (t *Table) Put(ctx context.Context, key string, value []byte) error {
	conn, err := t.db.conn()
	if err != nil {
		return err
	}

	q := fmt.Sprintf(`
		INSERT INTO %q (Key, Value) VALUES (?, ?)
		ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value
	`, t.name)
	if _, err := conn.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("writing key to %s: %w", t.name, err)
	}
	return nil
}

// Delete removes the record under key. Deleting an absent key is a
// no-op, not an error.
func (t *Table) Delete(ctx context.Context, key string) error {
	conn, err := t.db.conn()
	if err != nil {
		return err
	}

	q := fmt.Sprintf(`DELETE FROM %q WHERE Key = ?`, t.name)
	if _, err := conn.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("deleting key from %s: %w", t.name, err)
	}
	return nil
}

// Each calls fn for every key currently in the table, stopping early
// if fn returns false. Every call issues a fresh query; key order is
// whatever the engine returns and is not defined. Mutating the table
// while iterating has engine-defined behavior.
func (t *Table) Each(ctx context.Context, fn func(key string) bool) error {
	conn, err := t.db.conn()
	if err != nil {
		return err
	}

	q := fmt.Sprintf(`SELECT Key FROM %q`, t.name)
	rows, err := conn.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("querying keys in %s: %w", t.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return fmt.Errorf("scanning key in %s: %w", t.name, err)
		}
		if !fn(key) {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating keys in %s: %w", t.name, err)
	}
	return nil
}

// Keys returns all keys currently in the table.
func (t *Table) Keys(ctx context.Context) ([]string, error) {
	var keys []string //nolint:prealloc // size unknown from query
	err := t.Each(ctx, func(key string) bool {
		keys = append(keys, key)
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
