// Package cli implements the sqldbm command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sqldbm"
	"github.com/custodia-labs/sqldbm/internal/config"
	"github.com/custodia-labs/sqldbm/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// configDir overrides the config location; empty means ~/.sqldbm.
var configDir string

var (
	flagDB      string
	flagTable   string
	flagMode    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sqldbm",
	Short: "Inspect and edit SQLite-backed key/value databases",
	Long: `sqldbm works with key/value databases stored as SQLite files.

Defaults for --db and --table come from ~/.sqldbm/config.toml; see
"sqldbm config". Mode create-new deletes any existing file at the
database path before creating a fresh one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagDB == "" {
			flagDB = cfg.Database
		}
		if flagTable == "" {
			flagTable = cfg.Table
		}
		logger.SetVerbose(flagVerbose || cfg.Verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file path (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagTable, "table", "", "table name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "create", "open mode: open, create, create-new or read-only")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	store, err := config.NewStore(configDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return store.Get(), nil
}

// parseMode maps the --mode flag to a sqldbm open mode.
func parseMode(name string) (sqldbm.Mode, error) {
	switch name {
	case "open":
		return sqldbm.ModeOpen, nil
	case "create":
		return sqldbm.ModeOpenCreate, nil
	case "create-new":
		return sqldbm.ModeOpenCreateNew, nil
	case "read-only", "ro":
		return sqldbm.ModeReadOnly, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want open, create, create-new or read-only)", name)
	}
}

// openTable opens the database and table selected by the persistent
// flags. The caller must close the returned handle.
func openTable(cmd *cobra.Command) (*sqldbm.DB, *sqldbm.Table, error) {
	mode, err := parseMode(flagMode)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("opening %s (mode %s, table %s)", flagDB, mode, flagTable)
	db, err := sqldbm.Open(flagDB, mode)
	if err != nil {
		return nil, nil, err
	}

	table, err := db.Table(cmd.Context(), flagTable)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, table, nil
}
