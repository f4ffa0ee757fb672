package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Store a value under a key",
	Long: `Store a value under a key, overwriting any previous value.

With no VALUE, or with VALUE "-", the value is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	var value []byte
	if len(args) == 2 && args[1] != "-" {
		value = []byte(args[1])
	} else {
		var err error
		value, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading value from stdin: %w", err)
		}
	}

	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}

	if err := table.Put(cmd.Context(), args[0], value); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}
