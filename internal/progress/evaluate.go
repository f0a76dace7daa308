package progress

import (
	"fmt"

	"github.com/papapumpkin/orbit/internal/tracker"
)

// Statuses reported instead of a numeric progress line.
const (
	StatusNoGoal     = "no goal set"
	StatusFirstEntry = "ready for first entry"
)

// Report is the evaluator's output: current progress, the target, and
// the completion state for a tracker's authoritative goal.
type Report struct {
	Kind        tracker.Kind
	HasGoal     bool
	Progress    float64
	Target      float64
	TargetLabel string // range goals render the band instead of a number
	Unit        string
	Completed   bool
	Status      string // set instead of numbers for the no-goal and no-entry cases
}

// Evaluate computes the progress report for a tracker's first goal over
// its full entry history. A tracker without goals reports StatusNoGoal; a
// goal without entries reports StatusFirstEntry. A stored goal whose
// spec does not match its kind returns an error rather than a default:
// a misconfigured goal must never read as a completion.
func Evaluate(t *tracker.Tracker) (Report, error) {
	g := t.PrimaryGoal()
	if g == nil {
		return Report{Status: StatusNoGoal}, nil
	}
	return EvaluateGoal(t, g)
}

// EvaluateGoal computes the progress report for one specific goal.
func EvaluateGoal(t *tracker.Tracker, g *tracker.Goal) (Report, error) {
	if g.Spec == nil {
		return Report{}, fmt.Errorf("goal %q: no spec stored for kind %q", g.Title, g.Kind)
	}
	if g.Spec.Kind() != g.Kind {
		return Report{}, fmt.Errorf("goal %q: stored spec is %q but kind is %q", g.Title, g.Spec.Kind(), g.Kind)
	}

	rep := Report{Kind: g.Kind, HasGoal: true}
	if len(t.Entries) == 0 {
		rep.Status = StatusFirstEntry
		return rep, nil
	}

	switch spec := g.Spec.(type) {
	case tracker.SumSpec:
		rep.Progress = sumEntries(t.Entries)
		rep.Target = spec.Amount
		rep.Unit = spec.Unit
		rep.Completed = rep.Progress >= spec.Amount

	case tracker.DurationSpec:
		rep.Progress = sumEntries(t.Entries)
		rep.Target = spec.Amount
		rep.Unit = spec.Unit
		rep.Completed = rep.Progress >= spec.Amount

	case tracker.CountSpec:
		rep.Progress = float64(len(t.Entries))
		rep.Target = spec.Amount
		rep.Unit = spec.Unit
		rep.Completed = rep.Progress >= spec.Amount

	case tracker.BoolSpec:
		rep.Progress = float64(distinctTruthyDays(t.Entries))
		rep.Target = 1
		rep.Completed = rep.Progress > 0

	case tracker.StreakSpec:
		// The streak kind reports no live progress; the counters are
		// maintained by the entry-logging flows.
		rep.Progress = 0
		rep.Target = float64(spec.Target)
		rep.Completed = false

	case tracker.MilestoneSpec:
		rep.Progress = spec.Current
		rep.Target = spec.Target
		rep.Unit = spec.Unit
		rep.Completed = spec.Current >= spec.Target

	case tracker.RangeSpec:
		latest := t.LatestEntry().Value.Float()
		rep.Progress = latest
		rep.TargetLabel = fmt.Sprintf("[%s–%s]", trimFloat(spec.Min), trimFloat(spec.Max))
		rep.Unit = spec.Unit
		rep.Completed = latest >= spec.Min && latest <= spec.Max

	case tracker.ReductionSpec:
		latest := t.LatestEntry().Value.Float()
		rep.Progress = latest
		rep.Target = spec.Amount
		rep.Unit = spec.Unit
		rep.Completed = latest <= spec.Amount

	case tracker.PercentageSpec:
		rep.Progress = spec.Current
		rep.Target = spec.Target
		rep.Completed = spec.Current >= spec.Target

	case tracker.ReplacementSpec:
		rep.Progress = float64(distinctTruthyDays(t.Entries))
		rep.Target = spec.Amount
		rep.Completed = rep.Progress >= spec.Amount

	default:
		return Report{}, fmt.Errorf("goal %q: unhandled kind %q", g.Title, g.Kind)
	}
	return rep, nil
}

func sumEntries(entries []tracker.Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Value.Float()
	}
	return total
}
