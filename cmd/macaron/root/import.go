package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"macaron/internal/csvio"
	"macaron/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a CSV export",
		Long: `Import tasks from a previously exported CSV file.

Each imported row gets a fresh id, so importing never overwrites
existing tasks. An unreadable file aborts the whole import; nothing is
partially committed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file path is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			parsed := csvio.Import(string(data), time.Now())
			added, err := st.ImportMerge(ctx, parsed)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) (%d row(s) parsed)\n",
				ui.Good.Render("📥 Imported"), added, len(parsed))
			return nil
		},
	}

	return cmd
}
