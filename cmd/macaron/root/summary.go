package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"macaron/internal/ui"
)

func newSummaryCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate today's daily summary ledger entry",
		Long: `Generate (or regenerate) the persisted summary for today's calendar
day. The ledger is a historical record: entries survive even after the
tasks they counted are deleted. Use --list to print the ledger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if list {
				summaries := st.Snapshot().Summaries
				sort.Slice(summaries, func(i, j int) bool { return summaries[i].Date < summaries[j].Date })
				if len(summaries) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("Ledger is empty."))
					return nil
				}
				for _, s := range summaries {
					fmt.Fprintf(out, "%s %d/%d %s\n",
						ui.Muted.Render(s.Date), s.Completed, s.Total,
						ui.Muted.Render(fmt.Sprintf("%.0f%%", s.CompletionRate)))
				}
				return nil
			}

			s, err := st.GenerateDailySummary(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s: %d/%d (%.0f%%)\n",
				ui.Good.Render(ui.IconDone+" Recorded"), s.Date, s.Completed, s.Total, s.CompletionRate)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print the summary ledger")

	return cmd
}
