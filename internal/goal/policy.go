package goal

import "github.com/papapumpkin/orbit/internal/tracker"

// AllowedKinds returns the goal kinds a tracker of the given type may
// use, in display order. An unknown type yields nil.
func AllowedKinds(typ tracker.Type) []tracker.Kind {
	switch typ {
	case tracker.TypeInt, tracker.TypeFloat:
		return []tracker.Kind{
			tracker.KindSum,
			tracker.KindCount,
			tracker.KindMilestone,
			tracker.KindRange,
			tracker.KindDuration,
			tracker.KindPercentage,
			tracker.KindReduction,
		}
	case tracker.TypeBool:
		return []tracker.Kind{
			tracker.KindCount,
			tracker.KindBool,
			tracker.KindStreak,
		}
	case tracker.TypeString:
		return []tracker.Kind{
			tracker.KindCount,
			tracker.KindReplacement,
		}
	}
	return nil
}

// kindDescriptions holds the one-line help text shown next to each kind
// in the builder.
var kindDescriptions = map[tracker.Kind]string{
	tracker.KindSum:         "accumulate entry values until they reach a total",
	tracker.KindCount:       "record a number of entries",
	tracker.KindBool:        "check off a single completion",
	tracker.KindStreak:      "keep a run of consecutive days going",
	tracker.KindDuration:    "accumulate tracked time toward a total",
	tracker.KindMilestone:   "advance an externally updated position to a target",
	tracker.KindReduction:   "keep the latest value at or below a limit",
	tracker.KindRange:       "keep the latest value inside a band",
	tracker.KindPercentage:  "raise a percentage to a target percentage",
	tracker.KindReplacement: "swap an old behavior for a new one",
}

// Description returns the fixed one-line description for a kind, used
// for in-context help. Unknown kinds yield the empty string.
func Description(kind tracker.Kind) string {
	return kindDescriptions[kind]
}

// FieldType tells the UI how to parse the collected input.
type FieldType int

const (
	FieldNumber FieldType = iota
	FieldInt
	FieldText
)

// Field is one step of the goal-builder script: the wire-format key to
// populate, the prompt to show, an optional default, and whether the
// builder may skip it.
type Field struct {
	Key      string
	Prompt   string
	Type     FieldType
	Default  string
	Optional bool
}

// FieldsForKind returns the ordered field-collection script for a kind.
// The UI prompts field by field in exactly this order; the core performs
// no I/O itself. Title and period are collected by the caller for every
// kind and are not part of the script.
func FieldsForKind(kind tracker.Kind) []Field {
	switch kind {
	case tracker.KindSum, tracker.KindCount:
		return []Field{
			{Key: "amount", Prompt: "Target amount", Type: FieldNumber},
			{Key: "unit", Prompt: "Unit", Type: FieldText, Optional: true},
		}
	case tracker.KindBool:
		return nil
	case tracker.KindStreak:
		return []Field{
			{Key: "target_streak", Prompt: "Target streak (days)", Type: FieldInt},
			{Key: "current_streak", Prompt: "Current streak", Type: FieldInt, Default: "0", Optional: true},
			{Key: "best_streak", Prompt: "Best streak so far", Type: FieldInt, Default: "0", Optional: true},
		}
	case tracker.KindDuration:
		return []Field{
			{Key: "amount", Prompt: "Target duration", Type: FieldNumber},
			{Key: "unit", Prompt: "Unit", Type: FieldText, Default: "min", Optional: true},
		}
	case tracker.KindMilestone:
		return []Field{
			{Key: "target", Prompt: "Milestone target", Type: FieldNumber},
			{Key: "current", Prompt: "Current position", Type: FieldNumber, Default: "0"},
			{Key: "unit", Prompt: "Unit", Type: FieldText, Optional: true},
		}
	case tracker.KindReduction:
		return []Field{
			{Key: "amount", Prompt: "Upper limit", Type: FieldNumber},
			{Key: "unit", Prompt: "Unit", Type: FieldText, Optional: true},
		}
	case tracker.KindRange:
		return []Field{
			{Key: "min_amount", Prompt: "Lower bound", Type: FieldNumber},
			{Key: "max_amount", Prompt: "Upper bound", Type: FieldNumber},
			{Key: "unit", Prompt: "Unit", Type: FieldText, Optional: true},
			{Key: "mode", Prompt: "Mode", Type: FieldText, Optional: true},
		}
	case tracker.KindPercentage:
		return []Field{
			{Key: "target_percentage", Prompt: "Target percentage", Type: FieldNumber},
			{Key: "current_percentage", Prompt: "Current percentage", Type: FieldNumber, Default: "0"},
		}
	case tracker.KindReplacement:
		return []Field{
			{Key: "old_behavior", Prompt: "Behavior to replace", Type: FieldText},
			{Key: "new_behavior", Prompt: "Replacement behavior", Type: FieldText},
			{Key: "amount", Prompt: "Swap count", Type: FieldNumber, Default: "1", Optional: true},
		}
	}
	return nil
}
