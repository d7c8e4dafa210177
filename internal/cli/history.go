package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/baobao/elxup/internal/core"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past sync runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := core.GetHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		records := history.Records()
		if len(records) == 0 {
			fmt.Println("No sync runs recorded yet. Run 'elxup update'.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tPATH\tMODELS\tVOICES\tSTATUS")
		fmt.Fprintln(w, "────\t────\t──────\t──────\t──────")

		for _, r := range records {
			status := "✓"
			if r.Partial {
				status = "partial"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", r.Timestamp, r.Path, r.Models, r.Voices, status)
		}
		w.Flush()

		fmt.Printf("\n%d runs recorded\n", len(records))
		return nil
	},
}
