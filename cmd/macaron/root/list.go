package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"macaron/internal/query"
	"macaron/internal/task"
	"macaron/internal/ui"
)

func newListCmd() *cobra.Command {
	var status string
	var search string
	var from string
	var to string
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			statusFilter, err := query.ParseStatus(status)
			if err != nil {
				return err
			}
			fromAt, err := parseWhen(from)
			if err != nil {
				return err
			}
			toAt, err := parseWhen(to)
			if err != nil {
				return err
			}

			snap := st.Snapshot()
			tasks := snap.Tasks
			if !includeArchived {
				kept := make([]task.Task, 0, len(tasks))
				for _, t := range tasks {
					if !t.IsArchived {
						kept = append(kept, t)
					}
				}
				tasks = kept
			}

			rows := query.Filter(tasks, query.Criteria{
				Search:      search,
				CreatedFrom: fromAt,
				CreatedTo:   toAt,
				Status:      statusFilter,
			}, time.Now())

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks."))
				return nil
			}
			for _, t := range rows {
				printTaskLine(cmd, snap.Categories, t)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "all", "Status filter (all|pending|completed|overdue|today|week|month)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Substring match on title/description")
	cmd.Flags().StringVar(&from, "from", "", "Created on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Created on or before (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&includeArchived, "archived", "a", false, "Include archived tasks")

	return cmd
}

func printTaskLine(cmd *cobra.Command, categories []task.Category, t task.Task) {
	line := fmt.Sprintf("%s %s  %s %s %s",
		ui.Checkbox(t.IsCompleted),
		ui.Muted.Render(shortID(t.ID)),
		t.Title,
		ui.PriorityText(t.Priority),
		ui.Muted.Render(task.CategoryName(categories, t.Category)))
	if t.DueDate != nil {
		line += " " + ui.Warn.Render(ui.IconOverdue+" "+t.DueDate.Format("2006-01-02"))
	}
	if t.IsArchived {
		line += " " + ui.Muted.Render(ui.IconArchive)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
