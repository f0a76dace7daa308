package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orbit/internal/goal"
	"github.com/papapumpkin/orbit/internal/progress"
	"github.com/papapumpkin/orbit/internal/telemetry"
	"github.com/papapumpkin/orbit/internal/tracker"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals on a tracker",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <tracker>",
	Short: "Attach a goal to a tracker",
	Long: `Attach a goal to a tracker. The goal kind must be compatible with the
tracker's value type; each kind has its own fields, set with repeated
--set key=value flags. Run with an incompatible or incomplete record to
see which field is missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list <tracker>",
	Short: "List a tracker's goals with evaluated progress",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalList,
}

var goalUpdateCmd = &cobra.Command{
	Use:   "update <tracker> <goal-title>",
	Short: "Modify a goal's fields",
	Long: `Modify a goal in place. Kind-specific fields change with repeated
--set key=value flags; the kind itself is fixed. This is also how the
externally maintained positions move: milestone current, percentage
current, streak counters. The updated record is validated before
anything is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runGoalUpdate,
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <tracker> <goal-title>",
	Short: "Delete a goal by title",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalDelete,
}

var goalKindsCmd = &cobra.Command{
	Use:   "kinds [type]",
	Short: "List goal kinds, optionally for one tracker type",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGoalKinds,
}

func init() {
	goalAddCmd.Flags().String("title", "", "goal title (required)")
	goalAddCmd.Flags().String("kind", "", "goal kind (required; see `orbit goal kinds`)")
	goalAddCmd.Flags().String("period", "day", "evaluation period: day, week, month")
	goalAddCmd.Flags().StringArray("set", nil, "kind-specific field, key=value (repeatable)")
	goalUpdateCmd.Flags().String("rename", "", "new goal title")
	goalUpdateCmd.Flags().String("period", "", "new evaluation period: day, week, month")
	goalUpdateCmd.Flags().StringArray("set", nil, "kind-specific field, key=value (repeatable)")
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalUpdateCmd, goalDeleteCmd, goalKindsCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	title, _ := cmd.Flags().GetString("title")
	kind, _ := cmd.Flags().GetString("kind")
	period, _ := cmd.Flags().GetString("period")
	pairs, _ := cmd.Flags().GetStringArray("set")

	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: want key=value", pair)
		}
		values[key] = val
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.TrackerByTitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rec := tracker.GoalRecord{
		Title:  title,
		Kind:   tracker.Kind(kind),
		Period: tracker.Period(period),
	}
	fields := goal.FieldsForKind(rec.Kind)
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Key] = true
	}
	for key := range values {
		if !known[key] {
			return fmt.Errorf("--set %s: no such field for kind %q", key, kind)
		}
	}
	for _, f := range fields {
		if err := goal.SetField(&rec, f, values[f.Key]); err != nil {
			printer.Error(err)
			return fmt.Errorf("goal not added")
		}
	}

	g, err := goal.Validate(rec, t.Type)
	if err != nil {
		printer.Error(err)
		return fmt.Errorf("goal not added")
	}

	id, err := st.AddGoal(cmd.Context(), t.ID, g)
	if err != nil {
		return err
	}

	if em := newEmitter(cfg, printer); em != nil {
		defer em.Close()
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindGoalCreated,
			Tracker: t.Title,
			GoalID:  id,
			Data:    map[string]string{"kind": string(g.Kind), "title": g.Title},
		})
	}

	printer.GoalAdded(t.Title, g.Title)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
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
	if len(t.Goals) == 0 {
		fmt.Fprintf(out, "%s: no goals\n", t.Title)
		return nil
	}
	for i := range t.Goals {
		g := &t.Goals[i]
		rep, err := progress.EvaluateGoal(t, g)
		if err != nil {
			fmt.Fprintf(out, "%s (%s/%s): unreadable: %v\n", g.Title, g.Kind, g.Period, err)
			continue
		}
		fmt.Fprintf(out, "%s (%s/%s): %s\n", g.Title, g.Kind, g.Period, progress.Format(rep))
	}
	return nil
}

func runGoalUpdate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	printer := newPrinter(cfg)

	rename, _ := cmd.Flags().GetString("rename")
	period, _ := cmd.Flags().GetString("period")
	pairs, _ := cmd.Flags().GetStringArray("set")

	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: want key=value", pair)
		}
		values[key] = val
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.TrackerByTitle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	var target *tracker.Goal
	for i := range t.Goals {
		if t.Goals[i].Title == args[1] {
			target = &t.Goals[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("tracker %q has no goal titled %q", t.Title, args[1])
	}

	rec := target.Record()
	if rename != "" {
		rec.Title = rename
	}
	if period != "" {
		rec.Period = tracker.Period(period)
	}

	fields := goal.FieldsForKind(rec.Kind)
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Key] = true
	}
	for key := range values {
		if !known[key] {
			return fmt.Errorf("--set %s: no such field for kind %q", key, rec.Kind)
		}
	}
	// Only touch the fields that were passed; the rest keep their
	// stored values from the record.
	for _, f := range fields {
		raw, ok := values[f.Key]
		if !ok {
			continue
		}
		if err := goal.SetField(&rec, f, raw); err != nil {
			printer.Error(err)
			return fmt.Errorf("goal not updated")
		}
	}

	if _, err := goal.Validate(rec, t.Type); err != nil {
		printer.Error(err)
		return fmt.Errorf("goal not updated")
	}

	if err := st.UpdateGoal(cmd.Context(), target.ID, rec); err != nil {
		return err
	}

	if em := newEmitter(cfg, printer); em != nil {
		defer em.Close()
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindGoalUpdated,
			Tracker: t.Title,
			GoalID:  target.ID,
			Data:    map[string]string{"kind": string(rec.Kind), "title": rec.Title},
		})
	}

	printer.Info(fmt.Sprintf("updated goal %q on %s", rec.Title, t.Title))
	return nil
}

func runGoalDelete(cmd *cobra.Command, args []string) error {
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

	for i := range t.Goals {
		g := &t.Goals[i]
		if g.Title != args[1] {
			continue
		}
		if err := st.DeleteGoal(cmd.Context(), g.ID); err != nil {
			return err
		}
		if em := newEmitter(cfg, printer); em != nil {
			defer em.Close()
			em.Emit(telemetry.Event{Kind: telemetry.KindGoalDeleted, Tracker: t.Title, GoalID: g.ID})
		}
		printer.Info(fmt.Sprintf("deleted goal %q from %s", g.Title, t.Title))
		return nil
	}
	return fmt.Errorf("tracker %q has no goal titled %q", t.Title, args[1])
}

func runGoalKinds(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	kinds := tracker.Kinds
	if len(args) == 1 {
		typ := tracker.Type(args[0])
		if !typ.Valid() {
			return fmt.Errorf("unknown tracker type %q", args[0])
		}
		kinds = goal.AllowedKinds(typ)
	}
	for _, k := range kinds {
		fmt.Fprintf(out, "%-12s %s\n", string(k), goal.Description(k))
	}
	return nil
}
