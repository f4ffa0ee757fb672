package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	key := args[0]
	ok, err := table.Has(cmd.Context(), key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key %q not found in table %s", key, table.Name())
	}

	value, err := table.Get(cmd.Context(), key)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(value)
	return err
}
