// Package progress computes live goal progress from a tracker's entry
// history and renders it for the CLI, TUI, and report surfaces.
package progress

import (
	"sort"
	"time"

	"github.com/papapumpkin/orbit/internal/tracker"
)

// dayLayout collapses timestamps to calendar days; two entries on the
// same day count once.
const dayLayout = "2006-01-02"

// BestStreak returns the longest run of consecutive calendar days among
// the given timestamps. It computes only the historical best, not a
// current streak as of today.
func BestStreak(times []time.Time) int {
	if len(times) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(times))
	for _, t := range times {
		seen[t.Format(dayLayout)] = struct{}{}
	}
	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)

	best, run := 1, 1
	prev, _ := time.Parse(dayLayout, days[0])
	for _, d := range days[1:] {
		cur, _ := time.Parse(dayLayout, d)
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = cur
	}
	return best
}

// distinctTruthyDays counts calendar days holding at least one truthy
// entry. Duplicate entries on the same day collapse to one.
func distinctTruthyDays(entries []tracker.Entry) int {
	days := make(map[string]struct{})
	for _, e := range entries {
		if e.Value.Truthy() {
			days[e.Timestamp.Format(dayLayout)] = struct{}{}
		}
	}
	return len(days)
}
