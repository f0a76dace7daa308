package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/orbit/internal/progress"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// TrackerRow is one rendered row of the home list: the tracker plus its
// evaluated progress, or the evaluation error when the stored goal is
// unusable.
type TrackerRow struct {
	Tracker tracker.Tracker
	Report  progress.Report
	Err     error
}

// ListView renders the home list of trackers with live progress lines.
type ListView struct {
	Rows   []TrackerRow
	Cursor int
	Width  int
}

// NewListView builds rows by evaluating every tracker's first goal. A
// tracker whose stored goal fails evaluation keeps its row but shows
// the error instead of a progress line.
func NewListView(trackers []tracker.Tracker) ListView {
	lv := ListView{}
	for _, t := range trackers {
		row := TrackerRow{Tracker: t}
		row.Report, row.Err = progress.Evaluate(&t)
		lv.Rows = append(lv.Rows, row)
	}
	return lv
}

// Selected returns the tracker under the cursor, or nil when the list
// is empty.
func (lv *ListView) Selected() *tracker.Tracker {
	if len(lv.Rows) == 0 {
		return nil
	}
	return &lv.Rows[lv.Cursor].Tracker
}

// MoveUp moves the cursor up one row.
func (lv *ListView) MoveUp() {
	if lv.Cursor > 0 {
		lv.Cursor--
	}
}

// MoveDown moves the cursor down one row.
func (lv *ListView) MoveDown() {
	if lv.Cursor < len(lv.Rows)-1 {
		lv.Cursor++
	}
}

// View renders the list.
func (lv ListView) View() string {
	if len(lv.Rows) == 0 {
		return "  " + styleDim.Render("No trackers yet — create one with `orbit tracker add`") + "\n"
	}

	var b strings.Builder
	for i, row := range lv.Rows {
		b.WriteString(lv.renderRow(i, row))
		b.WriteString("\n")
	}
	return b.String()
}

func (lv ListView) renderRow(i int, row TrackerRow) string {
	selected := i == lv.Cursor

	indicator := "  "
	if selected {
		indicator = styleSelection.Render(selectionIndicator) + " "
	}

	nameWidth := 22
	name := truncate(row.Tracker.Title, nameWidth)
	padded := fmt.Sprintf("%-*s", nameWidth, name)
	var styledName string
	if selected {
		styledName = styleRowSelected.Render(padded)
	} else {
		styledName = styleRowTitle.Render(padded)
	}

	tag := styleDim.Render(fmt.Sprintf("[%s]", row.Tracker.Type))

	var detail string
	switch {
	case row.Err != nil:
		detail = styleError.Render("! " + row.Err.Error())
	case row.Report.Status == progress.StatusNoGoal:
		detail = styleDim.Render(iconNoGoal + " " + progress.StatusNoGoal)
	case row.Report.Completed:
		detail = styleRowDone.Render(iconDone + " " + progress.Format(row.Report))
	default:
		detail = styleRowPending.Render(iconPending + " " + progress.Format(row.Report))
	}

	return indicator + styledName + " " + tag + "  " + detail
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
