package goal

import (
	"fmt"
	"strconv"

	"github.com/papapumpkin/orbit/internal/tracker"
)

// SetField writes one collected builder input into a goal record. The
// raw string is parsed according to the field's type; an empty raw with
// a default falls back to the default, and an empty optional field is
// left unset. The returned error names the field so surfaces can point
// at it.
func SetField(rec *tracker.GoalRecord, f Field, raw string) error {
	if raw == "" {
		raw = f.Default
	}
	if raw == "" {
		if f.Optional {
			return nil
		}
		return &tracker.MissingFieldError{Field: f.Key}
	}

	switch f.Type {
	case FieldNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("field %q: %q is not a number", f.Key, raw)
		}
		return setNumber(rec, f.Key, v)
	case FieldInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("field %q: %q is not an integer", f.Key, raw)
		}
		return setInt(rec, f.Key, n)
	case FieldText:
		return setText(rec, f.Key, raw)
	}
	return fmt.Errorf("field %q: unknown field type", f.Key)
}

func setNumber(rec *tracker.GoalRecord, key string, v float64) error {
	switch key {
	case "amount":
		rec.Amount = &v
	case "min_amount":
		rec.MinAmount = &v
	case "max_amount":
		rec.MaxAmount = &v
	case "target":
		rec.Target = &v
	case "current":
		rec.Current = &v
	case "target_percentage":
		rec.TargetPercentage = &v
	case "current_percentage":
		rec.CurrentPercentage = &v
	default:
		return fmt.Errorf("unknown numeric field %q", key)
	}
	return nil
}

func setInt(rec *tracker.GoalRecord, key string, n int) error {
	switch key {
	case "target_streak":
		rec.TargetStreak = &n
	case "current_streak":
		rec.CurrentStreak = &n
	case "best_streak":
		rec.BestStreak = &n
	default:
		return fmt.Errorf("unknown integer field %q", key)
	}
	return nil
}

func setText(rec *tracker.GoalRecord, key, s string) error {
	switch key {
	case "unit":
		rec.Unit = s
	case "mode":
		rec.Mode = s
	case "old_behavior":
		rec.OldBehavior = s
	case "new_behavior":
		rec.NewBehavior = s
	default:
		return fmt.Errorf("unknown text field %q", key)
	}
	return nil
}
