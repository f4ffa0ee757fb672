package sqldbm

import "errors"

var (
	// ErrClosed indicates an operation on a handle, or on a table view
	// derived from a handle, after Close.
	ErrClosed = errors.New("database is closed")

	// ErrInvalidTable indicates a table name that is not a plain
	// identifier.
	ErrInvalidTable = errors.New("invalid table name")
)
