package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/orbit/internal/tui"
)

// tuiCmd launches the live dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the live dashboard: a tracker list with evaluated progress
lines, a detail panel, an entry prompt, and a goal builder. The view
refreshes automatically when another process writes the database.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	em := newEmitter(cfg, printer)
	defer em.Close()

	return tui.Run(st, cfg.DBPath, em)
}
