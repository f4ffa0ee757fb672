package cli

import (
	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del KEY",
	Short: "Delete a key",
	Long:  `Delete a key and its value. Deleting an absent key is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDel,
}

func init() {
	rootCmd.AddCommand(delCmd)
}

func runDel(cmd *cobra.Command, args []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}

	if err := table.Delete(cmd.Context(), args[0]); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}
