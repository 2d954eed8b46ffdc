package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ids, err := resolveIDs(st.Snapshot().Tasks, args)
			if err != nil {
				return err
			}
			if err := st.ToggleCompletion(ctx, ids[0]); err != nil {
				return err
			}

			for _, t := range st.Snapshot().Tasks {
				if t.ID == ids[0] {
					if t.IsCompleted {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Done"), t.Title)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconPending+" Reopened"), t.Title)
					}
					return nil
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task; nothing changed."))
			return nil
		},
	}

	return cmd
}
