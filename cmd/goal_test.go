package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/orbit/internal/store"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// seedTracker creates a store in the cwd's default location holding one
// tracker with a sum goal, and returns the goal's title.
func seedTracker(t *testing.T, ctx context.Context) string {
	t.Helper()
	if err := os.MkdirAll(".orbit", 0o755); err != nil {
		t.Fatal(err)
	}
	st, err := store.Open(ctx, filepath.Join(".orbit", "orbit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	tr := tracker.Tracker{
		Title: "pushups",
		Type:  tracker.TypeInt,
		Goals: []tracker.Goal{{
			Title:  "Morning set",
			Kind:   tracker.KindSum,
			Period: tracker.PeriodDay,
			Spec:   tracker.SumSpec{Amount: 30, Unit: "reps"},
		}},
	}
	if _, err := st.AddTracker(ctx, &tr); err != nil {
		t.Fatalf("add tracker: %v", err)
	}
	return "Morning set"
}

func TestGoalUpdate_PersistsAndEmitsEvent(t *testing.T) {
	t.Chdir(t.TempDir())
	ctx := context.Background()
	title := seedTracker(t, ctx)

	rootCmd.SetArgs([]string{"goal", "update", "pushups", title, "--set", "amount=50"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("goal update: %v", err)
	}

	st, err := store.Open(ctx, filepath.Join(".orbit", "orbit.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	tr, err := st.TrackerByTitle(ctx, "pushups")
	if err != nil {
		t.Fatal(err)
	}
	spec, ok := tr.Goals[0].Spec.(tracker.SumSpec)
	if !ok {
		t.Fatalf("spec type = %T, want SumSpec", tr.Goals[0].Spec)
	}
	if spec.Amount != 50 {
		t.Errorf("amount after update = %v, want 50", spec.Amount)
	}
	if spec.Unit != "reps" {
		t.Errorf("untouched unit = %q, want reps", spec.Unit)
	}

	events, err := os.ReadFile(filepath.Join(".orbit", "events.jsonl"))
	if err != nil {
		t.Fatalf("read telemetry: %v", err)
	}
	if !strings.Contains(string(events), `"kind":"goal_updated"`) {
		t.Errorf("telemetry missing goal_updated event:\n%s", events)
	}
}

func TestGoalUpdate_InvalidFieldLeavesGoalAlone(t *testing.T) {
	t.Chdir(t.TempDir())
	ctx := context.Background()
	title := seedTracker(t, ctx)

	rootCmd.SetArgs([]string{"goal", "update", "pushups", title, "--set", "amount=plenty"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("non-numeric amount should fail the update")
	}

	st, err := store.Open(ctx, filepath.Join(".orbit", "orbit.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	tr, err := st.TrackerByTitle(ctx, "pushups")
	if err != nil {
		t.Fatal(err)
	}
	if spec := tr.Goals[0].Spec.(tracker.SumSpec); spec.Amount != 30 {
		t.Errorf("amount after failed update = %v, want 30 untouched", spec.Amount)
	}
}
