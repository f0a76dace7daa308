package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orbit/internal/manifest"
	"github.com/papapumpkin/orbit/internal/store"
	"github.com/papapumpkin/orbit/internal/telemetry"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.toml]",
	Short: "Export tracker and goal definitions to a TOML manifest",
	Long: `Write every tracker definition and its goals to a TOML manifest
(default trackers.toml). Entries are not exported; the manifest
describes shape, not history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.toml>",
	Short: "Import trackers and goals from a TOML manifest",
	Long: `Create trackers and goals from a TOML manifest. The whole manifest is
validated before anything is written; one bad goal rejects the file.
Trackers whose titles already exist are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	path := "trackers.toml"
	if len(args) == 1 {
		path = args[0]
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.AllTrackers(cmd.Context())
	if err != nil {
		return err
	}
	if err := manifest.Write(path, trackers); err != nil {
		return err
	}

	printer.Info(fmt.Sprintf("exported %d trackers to %s", len(trackers), path))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	trackers, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	em := newEmitter(cfg, printer)
	if em != nil {
		defer em.Close()
	}

	var created, skipped int
	for i := range trackers {
		t := &trackers[i]
		if _, err := st.AddTracker(cmd.Context(), t); err != nil {
			if errors.Is(err, store.ErrDuplicateTitle) {
				printer.Warn(fmt.Sprintf("skipping %q: already exists", t.Title))
				skipped++
				continue
			}
			return err
		}
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindTrackerCreated,
			Tracker: t.Title,
			Data:    map[string]any{"type": string(t.Type), "goals": len(t.Goals)},
		})
		created++
	}

	printer.Info(fmt.Sprintf("imported %d trackers (%d skipped) from %s", created, skipped, args[0]))
	return nil
}
