package cli

import (
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all keys in the table",
	Long:  `List all keys in the table, one per line, in engine order.`,
	RunE:  runKeys,
}

var hasCmd = &cobra.Command{
	Use:   "has KEY",
	Short: "Report whether a key exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runHas,
}

var lenCmd = &cobra.Command{
	Use:   "len",
	Short: "Print the number of records in the table",
	RunE:  runLen,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(hasCmd)
	rootCmd.AddCommand(lenCmd)
}

func runKeys(cmd *cobra.Command, _ []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	return table.Each(cmd.Context(), func(key string) bool {
		cmd.Println(key)
		return true
	})
}

func runHas(cmd *cobra.Command, args []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	ok, err := table.Has(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Println(ok)
	return nil
}

func runLen(cmd *cobra.Command, _ []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := table.Len(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(count)
	return nil
}
