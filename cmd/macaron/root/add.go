package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/store"
	"macaron/internal/task"
	"macaron/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var priority string
	var category string
	var tags []string
	var due string
	var remind string
	var repeat string
	var repeatEnd string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := task.ParsePriority(priority)
			if err != nil {
				return err
			}
			rk, err := task.ParseRepeatKind(repeat)
			if err != nil {
				return err
			}
			dueAt, err := parseWhen(due)
			if err != nil {
				return err
			}
			remindAt, err := parseWhen(remind)
			if err != nil {
				return err
			}
			repeatEndAt, err := parseWhen(repeatEnd)
			if err != nil {
				return err
			}

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := st.Add(ctx, store.Draft{
				Title:        args[0],
				Description:  desc,
				Priority:     p,
				Category:     category,
				Tags:         tags,
				DueDate:      dueAt,
				ReminderTime: remindAt,
				Repeat:       rk,
				RepeatEnd:    repeatEndAt,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Added"),
				t.Title,
				ui.Muted.Render("("+shortID(t.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", task.FallbackCategoryID, "Category id")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remind, "remind", "", "Reminder time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&repeat, "repeat", "", "Repeat kind (none|daily|weekly|monthly)")
	cmd.Flags().StringVar(&repeatEnd, "repeat-end", "", "Repeat end date (YYYY-MM-DD)")

	return cmd
}
