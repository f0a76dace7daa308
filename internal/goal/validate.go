// Package goal validates goal definitions and supplies the builder
// policy the interactive surfaces follow when constructing one. A goal
// record that passes Validate is convertible to the tagged-union form
// the evaluator consumes; nothing is ever persisted before validating.
package goal

import (
	"github.com/papapumpkin/orbit/internal/tracker"
)

// Validate checks a goal record for structural validity and
// type-compatibility with the tracker it will attach to. On success it
// returns the validated goal with its kind-specific spec populated; on
// failure it returns a *tracker.MissingFieldError or
// *tracker.KindNotAllowedError and the zero goal. Validate is pure: it
// never writes anything.
func Validate(rec tracker.GoalRecord, typ tracker.Type) (tracker.Goal, error) {
	if rec.Title == "" {
		return tracker.Goal{}, &tracker.MissingFieldError{Field: "title"}
	}
	if rec.Kind == "" {
		return tracker.Goal{}, &tracker.MissingFieldError{Field: "kind"}
	}
	if rec.Period == "" {
		return tracker.Goal{}, &tracker.MissingFieldError{Field: "period"}
	}
	if !kindAllowed(rec.Kind, typ) {
		return tracker.Goal{}, &tracker.KindNotAllowedError{Kind: rec.Kind, Type: typ}
	}

	spec, err := buildSpec(rec)
	if err != nil {
		return tracker.Goal{}, err
	}
	return tracker.Goal{
		Title:  rec.Title,
		Kind:   rec.Kind,
		Period: rec.Period,
		Spec:   spec,
	}, nil
}

// buildSpec assembles the kind-specific spec, rejecting any record with
// a required field unset. Optional fields keep their zero defaults.
func buildSpec(rec tracker.GoalRecord) (tracker.Spec, error) {
	switch rec.Kind {
	case tracker.KindSum:
		if rec.Amount == nil {
			return nil, &tracker.MissingFieldError{Field: "amount"}
		}
		return tracker.SumSpec{Amount: *rec.Amount, Unit: rec.Unit}, nil

	case tracker.KindCount:
		if rec.Amount == nil {
			return nil, &tracker.MissingFieldError{Field: "amount"}
		}
		return tracker.CountSpec{Amount: *rec.Amount, Unit: rec.Unit}, nil

	case tracker.KindBool:
		return tracker.BoolSpec{}, nil

	case tracker.KindStreak:
		if rec.TargetStreak == nil {
			return nil, &tracker.MissingFieldError{Field: "target_streak"}
		}
		spec := tracker.StreakSpec{Target: *rec.TargetStreak}
		if rec.CurrentStreak != nil {
			spec.Current = *rec.CurrentStreak
		}
		if rec.BestStreak != nil {
			spec.Best = *rec.BestStreak
		}
		return spec, nil

	case tracker.KindDuration:
		if rec.Amount == nil {
			return nil, &tracker.MissingFieldError{Field: "amount"}
		}
		return tracker.DurationSpec{Amount: *rec.Amount, Unit: rec.Unit}, nil

	case tracker.KindMilestone:
		if rec.Target == nil {
			return nil, &tracker.MissingFieldError{Field: "target"}
		}
		if rec.Current == nil {
			return nil, &tracker.MissingFieldError{Field: "current"}
		}
		return tracker.MilestoneSpec{Target: *rec.Target, Current: *rec.Current, Unit: rec.Unit}, nil

	case tracker.KindReduction:
		if rec.Amount == nil {
			return nil, &tracker.MissingFieldError{Field: "amount"}
		}
		return tracker.ReductionSpec{Amount: *rec.Amount, Unit: rec.Unit}, nil

	case tracker.KindRange:
		if rec.MinAmount == nil {
			return nil, &tracker.MissingFieldError{Field: "min_amount"}
		}
		if rec.MaxAmount == nil {
			return nil, &tracker.MissingFieldError{Field: "max_amount"}
		}
		return tracker.RangeSpec{
			Min:  *rec.MinAmount,
			Max:  *rec.MaxAmount,
			Unit: rec.Unit,
			Mode: rec.Mode,
		}, nil

	case tracker.KindPercentage:
		if rec.TargetPercentage == nil {
			return nil, &tracker.MissingFieldError{Field: "target_percentage"}
		}
		if rec.CurrentPercentage == nil {
			return nil, &tracker.MissingFieldError{Field: "current_percentage"}
		}
		return tracker.PercentageSpec{
			Target:  *rec.TargetPercentage,
			Current: *rec.CurrentPercentage,
		}, nil

	case tracker.KindReplacement:
		if rec.OldBehavior == "" {
			return nil, &tracker.MissingFieldError{Field: "old_behavior"}
		}
		if rec.NewBehavior == "" {
			return nil, &tracker.MissingFieldError{Field: "new_behavior"}
		}
		spec := tracker.ReplacementSpec{
			OldBehavior: rec.OldBehavior,
			NewBehavior: rec.NewBehavior,
			Amount:      1,
		}
		if rec.Amount != nil {
			spec.Amount = *rec.Amount
		}
		return spec, nil
	}
	return nil, &tracker.MissingFieldError{Field: "kind"}
}

// kindAllowed implements the type-compatibility table: numeric trackers
// take the quantitative kinds, bool trackers the check-off kinds, str
// trackers count and replacement.
func kindAllowed(kind tracker.Kind, typ tracker.Type) bool {
	for _, k := range AllowedKinds(typ) {
		if k == kind {
			return true
		}
	}
	return false
}
