package progress

import (
	"fmt"
	"math"
	"strconv"

	"github.com/papapumpkin/orbit/internal/tracker"
)

// Format renders a progress report as a single human-readable line, one
// template per goal kind. Reports carrying a status (no goal, no
// entries) render the status verbatim.
func Format(rep Report) string {
	if rep.Status != "" {
		return rep.Status
	}

	switch rep.Kind {
	case tracker.KindSum, tracker.KindDuration:
		return fmt.Sprintf("%.1f / %s%s (%d%%)%s",
			rep.Progress, trimFloat(rep.Target), unitSuffix(rep.Unit), percent(rep.Progress, rep.Target), check(rep.Completed))
	case tracker.KindCount:
		return fmt.Sprintf("%d / %d%s (%d%%)%s",
			int(rep.Progress), int(rep.Target), unitSuffix(rep.Unit), percent(rep.Progress, rep.Target), check(rep.Completed))
	case tracker.KindBool:
		return fmt.Sprintf("%d day(s) complete%s", int(rep.Progress), check(rep.Completed))
	case tracker.KindStreak:
		return fmt.Sprintf("streak 0 / %d days", int(rep.Target))
	case tracker.KindMilestone:
		return fmt.Sprintf("%s / %s%s (%d%%)%s",
			trimFloat(rep.Progress), trimFloat(rep.Target), unitSuffix(rep.Unit), percent(rep.Progress, rep.Target), check(rep.Completed))
	case tracker.KindRange:
		return fmt.Sprintf("%s in %s%s%s",
			trimFloat(rep.Progress), rep.TargetLabel, unitSuffix(rep.Unit), check(rep.Completed))
	case tracker.KindReduction:
		return fmt.Sprintf("%s (limit %s%s)%s",
			trimFloat(rep.Progress), trimFloat(rep.Target), unitSuffix(rep.Unit), check(rep.Completed))
	case tracker.KindPercentage:
		return fmt.Sprintf("%d%% / %d%%%s",
			int(math.Round(rep.Progress)), int(math.Round(rep.Target)), check(rep.Completed))
	case tracker.KindReplacement:
		return fmt.Sprintf("%d / %d swap(s)%s",
			int(rep.Progress), int(rep.Target), check(rep.Completed))
	}
	return strconv.FormatFloat(rep.Progress, 'f', -1, 64)
}

// percent returns progress as an integer percentage of target, rounded
// to the nearest whole. A zero target reports 0% rather than dividing.
func percent(progress, target float64) int {
	if target == 0 {
		return 0
	}
	return int(math.Round(progress / target * 100))
}

// trimFloat formats a float without trailing zeros: 64 not 64.0.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}

func check(completed bool) string {
	if completed {
		return " ✓"
	}
	return ""
}
