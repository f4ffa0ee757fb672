// Package config persists CLI defaults in a TOML file.
//
// The file lives at ~/.sqldbm/config.toml and holds the default
// database path, the default table name, and the verbose flag, so that
// repeated invocations of the sqldbm tool do not need --db and --table
// on every command line.
package config
