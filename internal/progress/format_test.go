package progress

import (
	"testing"

	"github.com/papapumpkin/orbit/internal/tracker"
)

func TestFormat_Templates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rep  Report
		want string
	}{
		{
			name: "sum with unit",
			rep:  Report{Kind: tracker.KindSum, HasGoal: true, Progress: 70, Target: 64, Unit: "km", Completed: true},
			want: "70.0 / 64 km (109%) ✓",
		},
		{
			name: "sum incomplete",
			rep:  Report{Kind: tracker.KindSum, HasGoal: true, Progress: 12.5, Target: 64},
			want: "12.5 / 64 (20%)",
		},
		{
			name: "duration",
			rep:  Report{Kind: tracker.KindDuration, HasGoal: true, Progress: 90, Target: 150, Unit: "min"},
			want: "90.0 / 150 min (60%)",
		},
		{
			name: "count",
			rep:  Report{Kind: tracker.KindCount, HasGoal: true, Progress: 3, Target: 5},
			want: "3 / 5 (60%)",
		},
		{
			name: "bool complete",
			rep:  Report{Kind: tracker.KindBool, HasGoal: true, Progress: 2, Target: 1, Completed: true},
			want: "2 day(s) complete ✓",
		},
		{
			name: "streak",
			rep:  Report{Kind: tracker.KindStreak, HasGoal: true, Target: 30},
			want: "streak 0 / 30 days",
		},
		{
			name: "milestone",
			rep:  Report{Kind: tracker.KindMilestone, HasGoal: true, Progress: 120, Target: 500, Unit: "pages"},
			want: "120 / 500 pages (24%)",
		},
		{
			name: "range",
			rep:  Report{Kind: tracker.KindRange, HasGoal: true, Progress: 72.5, TargetLabel: "[70–80]", Unit: "kg", Completed: true},
			want: "72.5 in [70–80] kg ✓",
		},
		{
			name: "reduction",
			rep:  Report{Kind: tracker.KindReduction, HasGoal: true, Progress: 3, Target: 2, Unit: "cups"},
			want: "3 (limit 2 cups)",
		},
		{
			name: "percentage rounds to integer",
			rep:  Report{Kind: tracker.KindPercentage, HasGoal: true, Progress: 45.6, Target: 90},
			want: "46% / 90%",
		},
		{
			name: "replacement",
			rep:  Report{Kind: tracker.KindReplacement, HasGoal: true, Progress: 2, Target: 2, Completed: true},
			want: "2 / 2 swap(s) ✓",
		},
		{
			name: "zero target reports zero percent",
			rep:  Report{Kind: tracker.KindSum, HasGoal: true, Progress: 5, Target: 0, Completed: true},
			want: "5.0 / 0 (0%) ✓",
		},
		{
			name: "status overrides numbers",
			rep:  Report{Kind: tracker.KindSum, HasGoal: true, Status: StatusFirstEntry},
			want: StatusFirstEntry,
		},
		{
			name: "unknown kind falls back to progress",
			rep:  Report{Kind: tracker.Kind("mystery"), HasGoal: true, Progress: 7.5},
			want: "7.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.rep); got != tt.want {
				t.Errorf("Format(%+v) = %q, want %q", tt.rep, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		progress, target float64
		want             int
	}{
		{70, 64, 109}, // 109.375 rounds down
		{2, 3, 67},    // 66.67 rounds up
		{0, 10, 0},
		{5, 0, 0}, // zero denominator guard
	}
	for _, tt := range tests {
		if got := percent(tt.progress, tt.target); got != tt.want {
			t.Errorf("percent(%v, %v) = %d, want %d", tt.progress, tt.target, got, tt.want)
		}
	}
}
