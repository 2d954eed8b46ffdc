package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"macaron/internal/stats"
	"macaron/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the rolling per-day completion history",
		Long: `Show per-day totals over a trailing window, recomputed live from the
current task set. This is independent of the generated daily summary
ledger (see "summary"); the two can disagree once tasks have been
deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			history := stats.RollingHistory(st.Snapshot().Tasks, time.Now(), days)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Last %d days", days)))
			for _, day := range history {
				bar := strings.Repeat("█", int(day.CompletionRate/10))
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Muted.Render(day.Date),
					ui.Good.Render(fmt.Sprintf("%-10s", bar)),
					fmt.Sprintf("%d/%d", day.Completed, day.Total),
					ui.Muted.Render(fmt.Sprintf("%.0f%%", day.CompletionRate)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, "Window size in days (7 or 30)")

	return cmd
}
