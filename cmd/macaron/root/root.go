package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"macaron/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "macaron",
	Short:         "Macaron — pastel personal task tracker",
	Long:          "Macaron is a local-first task tracker with statistics, CSV export and a TUI board.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newSearchCmd(),
		newDoneCmd(),
		newRmCmd(),
		newArchiveCmd(),
		newUnarchiveCmd(),
		newMoveCmd(),
		newStatsCmd(),
		newHistoryCmd(),
		newSummaryCmd(),
		newExportCmd(),
		newImportCmd(),
		newClearCmd(),
		newInviteCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
