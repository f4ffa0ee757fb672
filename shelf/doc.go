// Package shelf stores typed Go values on a sqldbm table.
//
// A Shelf wraps a *sqldbm.Table and JSON-encodes values of a single
// type V, the way a Python shelve.Shelf pickles objects onto a dbm
// mapping. The table remains a plain string-to-bytes namespace, so a
// shelf can read anything a previous shelf of the same type wrote,
// across process restarts.
//
//	users := shelf.New[User](table)
//	if err := users.Put(ctx, "alice", User{Name: "Alice"}); err != nil {
//		return err
//	}
//	u, ok, err := users.Get(ctx, "alice")
//
// The shelf does not own the table's connection; closing the owning
// sqldbm.DB invalidates the shelf along with the table.
package shelf
