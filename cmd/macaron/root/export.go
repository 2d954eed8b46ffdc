package root

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"macaron/internal/config"
	"macaron/internal/csvio"
	"macaron/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks to a CSV file",
		Long: `Export all tasks (archived included) to a comma-delimited UTF-8 file.

The export is lossy: tags, archive state, repeat settings and task ids
are not written and will not survive a re-import.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := st.Snapshot()
			content := csvio.Export(snap.Tasks, snap.Categories)

			path := outPath
			if path == "" {
				path = filepath.Join(cfg.ExportDir, csvio.ExportFilename(time.Now()))
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) → %s\n",
				ui.Good.Render("📤 Exported"), len(snap.Tasks), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (defaults to the export dir)")

	return cmd
}
