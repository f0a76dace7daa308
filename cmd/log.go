package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orbit/internal/progress"
	"github.com/papapumpkin/orbit/internal/telemetry"
	"github.com/papapumpkin/orbit/internal/tracker"
)

var logCmd = &cobra.Command{
	Use:   "log <tracker> <value>",
	Short: "Log an entry against a tracker",
	Long: `Log a value against a tracker. The raw value is parsed against the
tracker's type: int and float trackers take numbers, bool trackers take
yes/no style answers, str trackers take free text.`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

var historyCmd = &cobra.Command{
	Use:   "history <tracker>",
	Short: "Show a tracker's entries, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	logCmd.Flags().String("at", "", "entry timestamp (RFC 3339; default now)")
	historyCmd.Flags().Int("limit", 20, "max entries to print (0 = all)")
	rootCmd.AddCommand(logCmd, historyCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.TrackerByTitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	v, err := tracker.ParseValue(t.Type, args[1])
	if err != nil {
		return err
	}

	at := time.Now()
	if raw, _ := cmd.Flags().GetString("at"); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
	}

	if _, err := st.AddEntry(cmd.Context(), t.ID, at, v); err != nil {
		return err
	}

	// Re-read so the progress line reflects the new entry.
	t, err = st.TrackerByTitle(cmd.Context(), t.Title)
	if err != nil {
		return err
	}
	rep, evalErr := progress.Evaluate(t)
	line := progress.Format(rep)
	if evalErr != nil {
		line = "goal unreadable: " + evalErr.Error()
	}

	if em := newEmitter(cfg, printer); em != nil {
		defer em.Close()
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindEntryLogged,
			Tracker: t.Title,
			Data:    map[string]string{"value": v.String()},
		})
		if evalErr == nil && rep.Completed {
			em.Emit(telemetry.Event{Kind: telemetry.KindGoalCompleted, Tracker: t.Title})
		}
	}

	printer.EntryLogged(t.Title, v.String(), line)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.TrackerByTitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(t.Entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no entries\n", t.Title)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 || limit > len(t.Entries) {
		limit = len(t.Entries)
	}

	out := cmd.OutOrStdout()
	// Entries load oldest first; walk backwards for newest first.
	for i := len(t.Entries) - 1; i >= len(t.Entries)-limit; i-- {
		e := t.Entries[i]
		fmt.Fprintf(out, "%s  %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Value.String())
	}
	return nil
}
