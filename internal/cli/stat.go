package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Show database and table statistics",
	RunE:  runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

var (
	statTitleStyle = lipgloss.NewStyle().Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Width(10)
)

func runStat(cmd *cobra.Command, _ []string) error {
	db, table, err := openTable(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := table.Len(cmd.Context())
	if err != nil {
		return err
	}

	fi, err := os.Stat(db.Path())
	if err != nil {
		return fmt.Errorf("statting database file: %w", err)
	}

	// Plain output when piped.
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	render := func(style lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return style.Render(s)
	}

	cmd.Println(render(statTitleStyle, db.Path()))
	cmd.Printf("%s %d bytes\n", render(statLabelStyle, "Size:"), fi.Size())
	cmd.Printf("%s %s\n", render(statLabelStyle, "Mode:"), db.Mode())
	cmd.Printf("%s %s\n", render(statLabelStyle, "Table:"), table.Name())
	cmd.Printf("%s %d\n", render(statLabelStyle, "Records:"), count)
	return nil
}
