package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/query"
	"macaron/internal/ui"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles, descriptions, tags and category names",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("query is required")
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

			snap := st.Snapshot()
			rows := query.Search(snap.Tasks, snap.Categories, args[0])
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No matches."))
				return nil
			}
			for _, t := range rows {
				printTaskLine(cmd, snap.Categories, t)
			}
			return nil
		},
	}

	return cmd
}
