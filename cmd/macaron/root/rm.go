package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete tasks",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one id is required")
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

			before := len(st.Snapshot().Tasks)
			ids, err := resolveIDs(st.Snapshot().Tasks, args)
			if err != nil {
				return err
			}
			if err := st.DeleteMany(ctx, ids); err != nil {
				return err
			}
			removed := before - len(st.Snapshot().Tasks)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s)\n", ui.Bad.Render("🗑️ Deleted"), removed)
			return nil
		},
	}

	return cmd
}
