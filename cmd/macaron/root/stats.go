package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"macaron/internal/stats"
	"macaron/internal/ui"
)

const streakLookbackDays = 30

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			now := time.Now()
			s := stats.Compute(snap.Tasks, now)
			streak := stats.CompletionStreak(snap.Tasks, now, streakLookbackDays)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Statistics"))
			fmt.Fprintln(out, ui.LabelValue("Total", s.Total))
			fmt.Fprintln(out, ui.LabelValue("Completed", s.Completed))
			fmt.Fprintln(out, ui.LabelValue("Pending", s.Pending))
			fmt.Fprintln(out, ui.LabelValue("Overdue", s.Overdue))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d created, %d completed", s.TodayTotal, s.TodayCompleted)))
			fmt.Fprintln(out, ui.LabelValue("Completion rate", fmt.Sprintf("%.0f%%", s.CompletionRate)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFlame, streak)))
			fmt.Fprintln(out, "")

			breakdown := stats.CategoryBreakdown(snap.Tasks, snap.Categories)
			if len(breakdown) == 0 {
				return nil
			}
			fmt.Fprintln(out, ui.H2.Render("By category"))
			for _, cs := range breakdown {
				fmt.Fprintf(out, "- %s %d/%d %s\n",
					ui.Key.Render(cs.Name+":"),
					cs.Completed, cs.Total,
					ui.Muted.Render(fmt.Sprintf("(%.0f%%)", cs.CompletionRate)))
			}
			return nil
		},
	}

	return cmd
}
