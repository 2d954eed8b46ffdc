package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/ui"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <id>...",
		Short: "Archive tasks",
		Args:  requireIDs,
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
			if err := st.Archive(ctx, ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s)\n", ui.Muted.Render(ui.IconArchive+" Archived"), len(ids))
			return nil
		},
	}

	return cmd
}

func newUnarchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unarchive <id>...",
		Short: "Restore archived tasks",
		Args:  requireIDs,
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
			if err := st.Unarchive(ctx, ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s)\n", ui.Good.Render(ui.IconSparkle+" Unarchived"), len(ids))
			return nil
		},
	}

	return cmd
}

func requireIDs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("at least one id is required")
	}
	return nil
}
