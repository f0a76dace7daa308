package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/papapumpkin/orbit/internal/progress"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// DetailPanel shows a single tracker: its goals, best streak, and
// recent entries in a scrollable viewport.
type DetailPanel struct {
	Viewport viewport.Model
	row      TrackerRow
}

// NewDetailPanel creates a detail panel sized to the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	return DetailPanel{Viewport: viewport.New(width, height)}
}

// SetTracker points the panel at a tracker row and rebuilds content.
func (dp *DetailPanel) SetTracker(row TrackerRow) {
	dp.row = row
	dp.Viewport.SetContent(dp.render())
	dp.Viewport.GotoTop()
}

// Resize adjusts the viewport dimensions.
func (dp *DetailPanel) Resize(width, height int) {
	dp.Viewport.Width = width
	dp.Viewport.Height = height
	dp.Viewport.SetContent(dp.render())
}

// View renders the panel inside its border.
func (dp DetailPanel) View() string {
	return stylePanelBorder.Render(dp.Viewport.View())
}

func (dp DetailPanel) render() string {
	t := dp.row.Tracker
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styleRowSelected.Render(t.Title), styleDim.Render(fmt.Sprintf("[%s]", t.Type)))
	if t.Category != "" {
		fmt.Fprintf(&b, "%s\n", styleDim.Render(t.Category))
	}
	b.WriteString("\n")

	switch {
	case dp.row.Err != nil:
		fmt.Fprintf(&b, "%s\n", styleError.Render("goal error: "+dp.row.Err.Error()))
	case dp.row.Report.HasGoal:
		g := t.PrimaryGoal()
		fmt.Fprintf(&b, "%s %s\n", styleFormLabel.Render("goal"), g.Title)
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			styleDim.Render("kind"), string(g.Kind),
			styleDim.Render("period"), string(g.Period))
		line := progress.Format(dp.row.Report)
		if dp.row.Report.Completed {
			fmt.Fprintf(&b, "%s\n", styleRowDone.Render(iconDone+" "+line))
		} else {
			fmt.Fprintf(&b, "%s\n", styleRowPending.Render(iconPending+" "+line))
		}
		if len(t.Goals) > 1 {
			fmt.Fprintf(&b, "%s\n", styleDim.Render(fmt.Sprintf("(%d more goal(s) not shown)", len(t.Goals)-1)))
		}
	default:
		fmt.Fprintf(&b, "%s\n", styleDim.Render(progress.StatusNoGoal))
	}

	best := progress.BestStreak(entryTimes(t.Entries))
	fmt.Fprintf(&b, "\n%s %d day(s)\n", styleFormLabel.Render("best streak"), best)

	b.WriteString("\n" + styleFormLabel.Render("entries") + "\n")
	if len(t.Entries) == 0 {
		b.WriteString(styleDim.Render("none recorded") + "\n")
		return b.String()
	}
	// Newest first, capped; the viewport scrolls the rest.
	const maxShown = 50
	shown := 0
	for i := len(t.Entries) - 1; i >= 0 && shown < maxShown; i-- {
		e := t.Entries[i]
		fmt.Fprintf(&b, "%s  %s\n",
			styleDim.Render(e.Timestamp.Format("2006-01-02 15:04")),
			e.Value.String())
		shown++
	}
	return b.String()
}

func entryTimes(entries []tracker.Entry) []time.Time {
	times := make([]time.Time, len(entries))
	for i, e := range entries {
		times[i] = e.Timestamp
	}
	return times
}
