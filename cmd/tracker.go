package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orbit/internal/progress"
	"github.com/papapumpkin/orbit/internal/telemetry"
	"github.com/papapumpkin/orbit/internal/tracker"
)

var trackerCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Manage trackers",
}

var trackerAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a tracker",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackerAdd,
}

var trackerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trackers with their current progress",
	Args:  cobra.NoArgs,
	RunE:  runTrackerList,
}

var trackerShowCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show one tracker in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackerShow,
}

var trackerDeleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a tracker and all its entries and goals",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackerDelete,
}

func init() {
	trackerAddCmd.Flags().String("type", "int", "value type: int, float, bool, str")
	trackerAddCmd.Flags().String("category", "", "free-form category label")
	trackerCmd.AddCommand(trackerAddCmd, trackerListCmd, trackerShowCmd, trackerDeleteCmd)
	rootCmd.AddCommand(trackerCmd)
}

func runTrackerAdd(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	rawType, _ := cmd.Flags().GetString("type")
	typ := tracker.Type(rawType)
	if !typ.Valid() {
		return fmt.Errorf("unknown tracker type %q (want int, float, bool, or str)", rawType)
	}
	category, _ := cmd.Flags().GetString("category")

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	t := tracker.Tracker{Title: args[0], Type: typ, Category: category}
	if _, err := st.AddTracker(cmd.Context(), &t); err != nil {
		return err
	}

	if em := newEmitter(cfg, printer); em != nil {
		defer em.Close()
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindTrackerCreated,
			Tracker: t.Title,
			Data:    map[string]string{"type": string(typ)},
		})
	}

	printer.Info(fmt.Sprintf("created tracker %q (%s)", t.Title, typ))
	return nil
}

func runTrackerList(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.AllTrackers(cmd.Context())
	if err != nil {
		return err
	}
	if len(trackers) == 0 {
		printer.Info("no trackers yet — create one with `orbit tracker add`")
		return nil
	}

	printer.Banner()
	for i := range trackers {
		t := &trackers[i]
		rep, err := progress.Evaluate(t)
		line := progress.Format(rep)
		if err != nil {
			line = "goal unreadable: " + err.Error()
		}
		printer.TrackerRow(t.Title, t.Type, t.Category, line, err == nil && rep.Completed)
	}
	return nil
}

func runTrackerShow(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  [%s]", t.Title, t.Type)
	if t.Category != "" {
		fmt.Fprintf(out, "  (%s)", t.Category)
	}
	fmt.Fprintln(out)

	for i := range t.Goals {
		g := &t.Goals[i]
		rep, err := progress.EvaluateGoal(t, g)
		marker := " "
		if i == 0 {
			marker = "*" // first goal drives the progress line
		}
		if err != nil {
			fmt.Fprintf(out, " %s %s (%s/%s): unreadable: %v\n", marker, g.Title, g.Kind, g.Period, err)
			continue
		}
		fmt.Fprintf(out, " %s %s (%s/%s): %s\n", marker, g.Title, g.Kind, g.Period, progress.Format(rep))
	}
	if len(t.Goals) == 0 {
		fmt.Fprintln(out, "  no goals")
	}

	fmt.Fprintf(out, "  %d entries\n", len(t.Entries))
	if last := t.LatestEntry(); last != nil {
		fmt.Fprintf(out, "  last: %s = %s\n", last.Timestamp.Local().Format("2006-01-02 15:04"), last.Value.String())
	}
	return nil
}

func runTrackerDelete(cmd *cobra.Command, args []string) error {
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
	if err := st.DeleteTracker(cmd.Context(), t.ID); err != nil {
		return err
	}

	if em := newEmitter(cfg, printer); em != nil {
		defer em.Close()
		em.Emit(telemetry.Event{Kind: telemetry.KindTrackerDeleted, Tracker: t.Title})
	}

	printer.Info(fmt.Sprintf("deleted tracker %q (%d entries, %d goals)", t.Title, len(t.Entries), len(t.Goals)))
	return nil
}
