package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/ui"
)

func newClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks and the summary ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to wipe data without --force")
			}
			ctx := context.Background()

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render("🗑️ All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the safety check")

	return cmd
}
