package goal

import (
	"errors"
	"testing"

	"github.com/papapumpkin/orbit/internal/tracker"
)

func fptr(f float64) *float64 { return &f }
func iptr(n int) *int         { return &n }

func TestValidate_MandatoryFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rec       tracker.GoalRecord
		wantField string
	}{
		{
			name:      "missing kind",
			rec:       tracker.GoalRecord{Title: "X"},
			wantField: "kind",
		},
		{
			name:      "missing title",
			rec:       tracker.GoalRecord{Kind: tracker.KindSum, Period: tracker.PeriodDay},
			wantField: "title",
		},
		{
			name:      "missing period",
			rec:       tracker.GoalRecord{Title: "X", Kind: tracker.KindSum},
			wantField: "period",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Validate(tt.rec, tracker.TypeInt)
			var missing *tracker.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Validate() error = %v, want MissingFieldError", err)
			}
			if missing.Field != tt.wantField {
				t.Errorf("missing field = %q, want %q", missing.Field, tt.wantField)
			}
		})
	}
}

func TestValidate_KindCompatibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    tracker.Kind
		typ     tracker.Type
		allowed bool
	}{
		{name: "sum on int", kind: tracker.KindSum, typ: tracker.TypeInt, allowed: true},
		{name: "sum on float", kind: tracker.KindSum, typ: tracker.TypeFloat, allowed: true},
		{name: "sum on bool", kind: tracker.KindSum, typ: tracker.TypeBool, allowed: false},
		{name: "sum on str", kind: tracker.KindSum, typ: tracker.TypeString, allowed: false},
		{name: "bool on bool", kind: tracker.KindBool, typ: tracker.TypeBool, allowed: true},
		{name: "bool on int", kind: tracker.KindBool, typ: tracker.TypeInt, allowed: false},
		{name: "streak on bool", kind: tracker.KindStreak, typ: tracker.TypeBool, allowed: true},
		{name: "streak on float", kind: tracker.KindStreak, typ: tracker.TypeFloat, allowed: false},
		{name: "replacement on str", kind: tracker.KindReplacement, typ: tracker.TypeString, allowed: true},
		{name: "replacement on int", kind: tracker.KindReplacement, typ: tracker.TypeInt, allowed: false},
		{name: "range on float", kind: tracker.KindRange, typ: tracker.TypeFloat, allowed: true},
		{name: "range on str", kind: tracker.KindRange, typ: tracker.TypeString, allowed: false},
		{name: "count on every type", kind: tracker.KindCount, typ: tracker.TypeString, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := fullRecordFor(tt.kind)
			_, err := Validate(rec, tt.typ)
			var notAllowed *tracker.KindNotAllowedError
			if tt.allowed {
				if errors.As(err, &notAllowed) {
					t.Fatalf("Validate() rejected allowed kind: %v", err)
				}
				if err != nil {
					t.Fatalf("Validate(): %v", err)
				}
				return
			}
			if !errors.As(err, &notAllowed) {
				t.Fatalf("Validate() error = %v, want KindNotAllowedError", err)
			}
			if notAllowed.Kind != tt.kind || notAllowed.Type != tt.typ {
				t.Errorf("KindNotAllowedError = %+v", notAllowed)
			}
		})
	}
}

// fullRecordFor builds a record with every field its kind requires.
func fullRecordFor(kind tracker.Kind) tracker.GoalRecord {
	rec := tracker.GoalRecord{Title: "g", Kind: kind, Period: tracker.PeriodDay}
	switch kind {
	case tracker.KindSum, tracker.KindCount, tracker.KindDuration, tracker.KindReduction:
		rec.Amount = fptr(10)
	case tracker.KindStreak:
		rec.TargetStreak = iptr(7)
	case tracker.KindMilestone:
		rec.Target, rec.Current = fptr(100), fptr(0)
	case tracker.KindRange:
		rec.MinAmount, rec.MaxAmount = fptr(1), fptr(2)
	case tracker.KindPercentage:
		rec.TargetPercentage, rec.CurrentPercentage = fptr(90), fptr(10)
	case tracker.KindReplacement:
		rec.OldBehavior, rec.NewBehavior = "old", "new"
	}
	return rec
}

func TestValidate_KindRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		typ       tracker.Type
		mutate    func(*tracker.GoalRecord)
		kind      tracker.Kind
		wantField string
	}{
		{
			name: "sum without amount", typ: tracker.TypeInt, kind: tracker.KindSum,
			mutate:    func(r *tracker.GoalRecord) { r.Amount = nil },
			wantField: "amount",
		},
		{
			name: "range without upper bound", typ: tracker.TypeFloat, kind: tracker.KindRange,
			mutate:    func(r *tracker.GoalRecord) { r.MaxAmount = nil },
			wantField: "max_amount",
		},
		{
			name: "range without lower bound", typ: tracker.TypeFloat, kind: tracker.KindRange,
			mutate:    func(r *tracker.GoalRecord) { r.MinAmount = nil },
			wantField: "min_amount",
		},
		{
			name: "milestone without target", typ: tracker.TypeInt, kind: tracker.KindMilestone,
			mutate:    func(r *tracker.GoalRecord) { r.Target = nil },
			wantField: "target",
		},
		{
			name: "milestone without current", typ: tracker.TypeInt, kind: tracker.KindMilestone,
			mutate:    func(r *tracker.GoalRecord) { r.Current = nil },
			wantField: "current",
		},
		{
			name: "percentage without target", typ: tracker.TypeFloat, kind: tracker.KindPercentage,
			mutate:    func(r *tracker.GoalRecord) { r.TargetPercentage = nil },
			wantField: "target_percentage",
		},
		{
			name: "streak without target", typ: tracker.TypeBool, kind: tracker.KindStreak,
			mutate:    func(r *tracker.GoalRecord) { r.TargetStreak = nil },
			wantField: "target_streak",
		},
		{
			name: "replacement without new behavior", typ: tracker.TypeString, kind: tracker.KindReplacement,
			mutate:    func(r *tracker.GoalRecord) { r.NewBehavior = "" },
			wantField: "new_behavior",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := fullRecordFor(tt.kind)
			tt.mutate(&rec)
			_, err := Validate(rec, tt.typ)
			var missing *tracker.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Validate() error = %v, want MissingFieldError", err)
			}
			if missing.Field != tt.wantField {
				t.Errorf("missing field = %q, want %q", missing.Field, tt.wantField)
			}
		})
	}
}

func TestValidate_ZeroIsNotUnset(t *testing.T) {
	t.Parallel()

	// An explicitly zero amount is a legitimate target and must not be
	// conflated with an unset field.
	rec := tracker.GoalRecord{
		Title: "zero sugar", Kind: tracker.KindReduction, Period: tracker.PeriodDay,
		Amount: fptr(0),
	}
	g, err := Validate(rec, tracker.TypeInt)
	if err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	spec, ok := g.Spec.(tracker.ReductionSpec)
	if !ok {
		t.Fatalf("spec type = %T", g.Spec)
	}
	if spec.Amount != 0 {
		t.Errorf("Amount = %v, want 0", spec.Amount)
	}
}

func TestValidate_ReplacementDefaultsAmount(t *testing.T) {
	t.Parallel()

	rec := fullRecordFor(tracker.KindReplacement)
	g, err := Validate(rec, tracker.TypeString)
	if err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	if spec := g.Spec.(tracker.ReplacementSpec); spec.Amount != 1 {
		t.Errorf("default replacement amount = %v, want 1", spec.Amount)
	}
}

func TestValidate_RecordRoundTrip(t *testing.T) {
	t.Parallel()

	// Validated goals must convert back to a record that validates to
	// the same goal: the wire shape is lossless.
	for _, kind := range tracker.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()
			typ := hostType(kind)
			g, err := Validate(fullRecordFor(kind), typ)
			if err != nil {
				t.Fatalf("first Validate(): %v", err)
			}
			again, err := Validate(g.Record(), typ)
			if err != nil {
				t.Fatalf("second Validate(): %v", err)
			}
			if again.Spec != g.Spec {
				t.Errorf("round-tripped spec = %+v, want %+v", again.Spec, g.Spec)
			}
		})
	}
}

// hostType picks a tracker type compatible with the kind.
func hostType(kind tracker.Kind) tracker.Type {
	switch kind {
	case tracker.KindBool, tracker.KindStreak:
		return tracker.TypeBool
	case tracker.KindReplacement:
		return tracker.TypeString
	}
	return tracker.TypeFloat
}
