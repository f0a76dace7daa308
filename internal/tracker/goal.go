package tracker

import "fmt"

// Kind identifies one of the ten goal success semantics.
type Kind string

const (
	KindSum         Kind = "sum"
	KindCount       Kind = "count"
	KindBool        Kind = "bool"
	KindStreak      Kind = "streak"
	KindDuration    Kind = "duration"
	KindMilestone   Kind = "milestone"
	KindReduction   Kind = "reduction"
	KindRange       Kind = "range"
	KindPercentage  Kind = "percentage"
	KindReplacement Kind = "replacement"
)

// Kinds lists all goal kinds in display order.
var Kinds = []Kind{
	KindSum, KindCount, KindBool, KindStreak, KindDuration,
	KindMilestone, KindReduction, KindRange, KindPercentage, KindReplacement,
}

// Valid reports whether k is a known goal kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Period is the evaluation cadence attached to a goal. The evaluator
// does not window entries by period; the field rides along for the
// reporting surfaces.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Periods lists all goal periods in display order.
var Periods = []Period{PeriodDay, PeriodWeek, PeriodMonth}

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth
}

// Goal is a target attached to a tracker. The kind-specific fields live
// in Spec; after validation Spec is always non-nil and its concrete type
// matches Kind.
type Goal struct {
	ID     int64
	Title  string
	Kind   Kind
	Period Period
	Spec   Spec
}

// Spec is the kind-specific half of a goal. Exactly one concrete spec
// type exists per kind, so the evaluator and formatter can switch
// exhaustively instead of probing a loose field map.
type Spec interface {
	Kind() Kind
}

// SumSpec carries the target for sum goals: accumulate entry values
// until the total reaches Amount.
type SumSpec struct {
	Amount float64
	Unit   string
}

// CountSpec carries the target for count goals: record Amount entries.
type CountSpec struct {
	Amount float64
	Unit   string
}

// BoolSpec is the check-off goal: one truthy entry on any day completes
// it. The implicit target is a single completion day.
type BoolSpec struct{}

// StreakSpec carries the streak targets. Current and Best are maintained
// externally by the entry-logging flows, not by the evaluator.
type StreakSpec struct {
	Target  int
	Current int
	Best    int
}

// DurationSpec carries the target for duration goals: accumulate tracked
// time until the total reaches Amount.
type DurationSpec struct {
	Amount float64
	Unit   string
}

// MilestoneSpec carries an externally maintained position toward a fixed
// target (pages read, kilograms moved).
type MilestoneSpec struct {
	Target  float64
	Current float64
	Unit    string
}

// ReductionSpec inverts the usual direction: the goal is met while the
// latest entry stays at or below Amount.
type ReductionSpec struct {
	Amount float64
	Unit   string
}

// RangeSpec is met while the latest entry falls inside [Min, Max],
// inclusive on both bounds.
type RangeSpec struct {
	Min  float64
	Max  float64
	Unit string
	Mode string
}

// PercentageSpec compares externally maintained percentages.
type PercentageSpec struct {
	Target  float64
	Current float64
}

// ReplacementSpec swaps one behavior for another; completion counts
// distinct days with a truthy entry, like bool, against Amount.
type ReplacementSpec struct {
	OldBehavior string
	NewBehavior string
	Amount      float64
}

func (SumSpec) Kind() Kind         { return KindSum }
func (CountSpec) Kind() Kind       { return KindCount }
func (BoolSpec) Kind() Kind        { return KindBool }
func (StreakSpec) Kind() Kind      { return KindStreak }
func (DurationSpec) Kind() Kind    { return KindDuration }
func (MilestoneSpec) Kind() Kind   { return KindMilestone }
func (ReductionSpec) Kind() Kind   { return KindReduction }
func (RangeSpec) Kind() Kind       { return KindRange }
func (PercentageSpec) Kind() Kind  { return KindPercentage }
func (ReplacementSpec) Kind() Kind { return KindReplacement }

// GoalRecord is the persisted goal shape: the mandatory title/kind/period
// keys plus every kind-specific key as an optional field. Numeric fields
// are pointers so an unset field is distinguishable from a legitimate
// zero. This shape is the wire format between the builder, validator,
// store, and manifest files, and round-trips losslessly.
type GoalRecord struct {
	Title             string   `toml:"title"`
	Kind              Kind     `toml:"kind"`
	Period            Period   `toml:"period"`
	Amount            *float64 `toml:"amount,omitempty"`
	Unit              string   `toml:"unit,omitempty"`
	MinAmount         *float64 `toml:"min_amount,omitempty"`
	MaxAmount         *float64 `toml:"max_amount,omitempty"`
	Mode              string   `toml:"mode,omitempty"`
	Target            *float64 `toml:"target,omitempty"`
	Current           *float64 `toml:"current,omitempty"`
	TargetPercentage  *float64 `toml:"target_percentage,omitempty"`
	CurrentPercentage *float64 `toml:"current_percentage,omitempty"`
	TargetStreak      *int     `toml:"target_streak,omitempty"`
	CurrentStreak     *int     `toml:"current_streak,omitempty"`
	BestStreak        *int     `toml:"best_streak,omitempty"`
	OldBehavior       string   `toml:"old_behavior,omitempty"`
	NewBehavior       string   `toml:"new_behavior,omitempty"`
}

// Record converts a validated goal back to its persisted shape.
func (g Goal) Record() GoalRecord {
	rec := GoalRecord{Title: g.Title, Kind: g.Kind, Period: g.Period}
	switch spec := g.Spec.(type) {
	case SumSpec:
		rec.Amount, rec.Unit = ptr(spec.Amount), spec.Unit
	case CountSpec:
		rec.Amount, rec.Unit = ptr(spec.Amount), spec.Unit
	case BoolSpec:
		// No kind-specific keys; the target is implicit.
	case StreakSpec:
		rec.TargetStreak = ptr(spec.Target)
		rec.CurrentStreak = ptr(spec.Current)
		rec.BestStreak = ptr(spec.Best)
	case DurationSpec:
		rec.Amount, rec.Unit = ptr(spec.Amount), spec.Unit
	case MilestoneSpec:
		rec.Target, rec.Current, rec.Unit = ptr(spec.Target), ptr(spec.Current), spec.Unit
	case ReductionSpec:
		rec.Amount, rec.Unit = ptr(spec.Amount), spec.Unit
	case RangeSpec:
		rec.MinAmount, rec.MaxAmount = ptr(spec.Min), ptr(spec.Max)
		rec.Unit, rec.Mode = spec.Unit, spec.Mode
	case PercentageSpec:
		rec.TargetPercentage = ptr(spec.Target)
		rec.CurrentPercentage = ptr(spec.Current)
	case ReplacementSpec:
		rec.OldBehavior, rec.NewBehavior = spec.OldBehavior, spec.NewBehavior
		rec.Amount = ptr(spec.Amount)
	default:
		panic(fmt.Sprintf("tracker: goal %q has no spec for kind %q", g.Title, g.Kind))
	}
	return rec
}

func ptr[T any](v T) *T { return &v }
