package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sqldbm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI defaults",
	Long: `View and configure the defaults used when --db and --table are not
given on the command line.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current defaults",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set SETTING VALUE",
	Short: "Set a default",
	Long: `Set a default and persist it immediately.

Available settings:
  database - default database file path
  table    - default table name
  verbose  - enable verbose logging by default (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := config.NewStore(configDir)
	if err != nil {
		return err
	}

	cfg := store.Get()
	cmd.Printf("Config file: %s\n\n", store.Path())
	cmd.Printf("  database: %s\n", cfg.Database)
	cmd.Printf("  table:    %s\n", cfg.Table)
	cmd.Printf("  verbose:  %t\n", cfg.Verbose)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := config.NewStore(configDir)
	if err != nil {
		return err
	}

	cfg := store.Get()
	switch args[0] {
	case "database":
		cfg.Database = args[1]
	case "table":
		cfg.Table = args[1]
	case "verbose":
		v, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", args[1], err)
		}
		cfg.Verbose = v
	default:
		return fmt.Errorf("unknown setting %q (want database, table or verbose)", args[0])
	}

	if err := store.Set(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("%s set to %s\n", args[0], args[1])
	return nil
}
