package shelf

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/sqldbm"
)

// Shelf stores values of type V on a sqldbm table, JSON-encoded.
type Shelf[V any] struct {
	table *sqldbm.Table
}

// New returns a shelf over table. The table is shared: records written
// by other users of the table are visible to the shelf and must be
// valid JSON for V to be readable.
func New[V any](table *sqldbm.Table) *Shelf[V] {
	return &Shelf[V]{table: table}
}

// Table returns the underlying table.
func (s *Shelf[V]) Table() *sqldbm.Table {
	return s.table
}

// Get returns the value stored under key. The second result is false
// if the key is absent.
func (s *Shelf[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var value V

	raw, err := s.table.Get(ctx, key)
	if err != nil {
		return value, false, err
	}
	if raw == nil {
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("decoding value for %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, overwriting any previous value.
func (s *Shelf[V]) Put(ctx context.Context, key string, value V) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}
	return s.table.Put(ctx, key, raw)
}

// Delete removes the value under key. Deleting an absent key is a
// no-op.
func (s *Shelf[V]) Delete(ctx context.Context, key string) error {
	return s.table.Delete(ctx, key)
}

// Has reports whether key exists on the shelf.
func (s *Shelf[V]) Has(ctx context.Context, key string) (bool, error) {
	return s.table.Has(ctx, key)
}

// Len returns the number of values on the shelf.
func (s *Shelf[V]) Len(ctx context.Context) (int64, error) {
	return s.table.Len(ctx)
}

// Keys returns all keys on the shelf.
func (s *Shelf[V]) Keys(ctx context.Context) ([]string, error) {
	return s.table.Keys(ctx)
}
