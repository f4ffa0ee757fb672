package cli

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sqldbm/internal/logger"
)

var (
	benchCount     int
	benchValueSize int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Write a batch of random records and report throughput",
	Long: `Write a batch of records with random UUID keys, sync, and report
throughput. The records stay in the table afterwards.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchCount, "count", "n", 10000, "number of records to write")
	benchCmd.Flags().IntVar(&benchValueSize, "value-size", 64, "value size in bytes")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}

	value := bytes.Repeat([]byte{'x'}, benchValueSize)

	start := time.Now()
	for i := 0; i < benchCount; i++ {
		if err := table.Put(cmd.Context(), uuid.NewString(), value); err != nil {
			db.Close()
			return err
		}
	}
	wrote := time.Since(start)

	if err := db.Sync(cmd.Context()); err != nil {
		db.Close()
		return err
	}
	total := time.Since(start)
	logger.Debug("wrote in %s, synced in %s", wrote, total-wrote)

	cmd.Printf("%d records (%d-byte values) in %s (%.0f records/s)\n",
		benchCount, benchValueSize, total.Round(time.Millisecond),
		float64(benchCount)/total.Seconds())
	return db.Close()
}
