package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/task"
	"macaron/internal/ui"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <category-id> <id>...",
		Short: "Move tasks to a category",
		Long: `Move tasks to a category by id.

The target category id is not checked against the known set; a dangling
id is kept as-is and shown under the fallback category.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("category id and at least one task id are required")
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

			categoryID := args[0]
			ids, err := resolveIDs(st.Snapshot().Tasks, args[1:])
			if err != nil {
				return err
			}
			if err := st.MoveCategory(ctx, ids, categoryID); err != nil {
				return err
			}

			name := task.CategoryName(st.Snapshot().Categories, categoryID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) → %s\n", ui.Good.Render("📁 Moved"), len(ids), name)
			return nil
		},
	}

	return cmd
}
