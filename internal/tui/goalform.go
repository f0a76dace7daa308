package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/orbit/internal/goal"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// formStep tracks where the goal builder is in its script.
type formStep int

const (
	stepTitle formStep = iota
	stepKind
	stepPeriod
	stepFields
	stepDone
)

// GoalForm walks the goal-builder policy field by field: title, then a
// kind chosen from the tracker type's allowed set, then period, then
// the kind's field script. The finished record goes through the
// validator before the form reports done; a failing record keeps the
// form open with the offending field named.
type GoalForm struct {
	TrackerTitle string

	typ    tracker.Type
	kinds  []tracker.Kind
	fields []goal.Field

	step       formStep
	kindCursor int
	perCursor  int
	fieldIdx   int
	input      textinput.Model
	rec        tracker.GoalRecord
	errMsg     string

	goal tracker.Goal
}

// NewGoalForm creates a builder form for the given tracker.
func NewGoalForm(t *tracker.Tracker) GoalForm {
	in := textinput.New()
	in.Placeholder = "goal title"
	in.Focus()
	in.CharLimit = 80
	in.Width = 40
	return GoalForm{
		TrackerTitle: t.Title,
		typ:          t.Type,
		kinds:        goal.AllowedKinds(t.Type),
		input:        in,
	}
}

// Done reports whether the form finished, and the validated goal if so.
func (f *GoalForm) Done() (tracker.Goal, bool) {
	return f.goal, f.step == stepDone
}

// Update advances the form on key input. It returns true when the
// caller should close the form (finished or cancelled).
func (f *GoalForm) Update(msg tea.Msg) (closed bool, cmd tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		f.input, cmd = f.input.Update(msg)
		return false, cmd
	}

	switch key.String() {
	case "esc":
		return true, nil
	case "up", "down":
		f.moveCursor(key.String() == "down")
		return false, nil
	case "enter":
		return f.advance(), nil
	}

	if f.step == stepTitle || f.step == stepFields {
		f.input, cmd = f.input.Update(msg)
	}
	return false, cmd
}

func (f *GoalForm) moveCursor(down bool) {
	delta := -1
	if down {
		delta = 1
	}
	switch f.step {
	case stepKind:
		f.kindCursor = clamp(f.kindCursor+delta, 0, len(f.kinds)-1)
	case stepPeriod:
		f.perCursor = clamp(f.perCursor+delta, 0, len(tracker.Periods)-1)
	}
}

// advance commits the current step. Returns true when the form is done.
func (f *GoalForm) advance() bool {
	f.errMsg = ""
	switch f.step {
	case stepTitle:
		title := strings.TrimSpace(f.input.Value())
		if title == "" {
			f.errMsg = "title is required"
			return false
		}
		f.rec.Title = title
		f.step = stepKind

	case stepKind:
		f.rec.Kind = f.kinds[f.kindCursor]
		f.step = stepPeriod

	case stepPeriod:
		f.rec.Period = tracker.Periods[f.perCursor]
		f.fields = goal.FieldsForKind(f.rec.Kind)
		if len(f.fields) == 0 {
			return f.finish()
		}
		f.step = stepFields
		f.prepareFieldInput()

	case stepFields:
		field := f.fields[f.fieldIdx]
		if err := goal.SetField(&f.rec, field, strings.TrimSpace(f.input.Value())); err != nil {
			f.errMsg = err.Error()
			return false
		}
		f.fieldIdx++
		if f.fieldIdx >= len(f.fields) {
			return f.finish()
		}
		f.prepareFieldInput()
	}
	return false
}

// finish runs the record through the validator; validation failures
// keep the form open so nothing invalid is ever handed to the caller.
func (f *GoalForm) finish() bool {
	g, err := goal.Validate(f.rec, f.typ)
	if err != nil {
		f.errMsg = err.Error()
		f.step = stepFields
		f.fieldIdx = 0
		f.fields = goal.FieldsForKind(f.rec.Kind)
		if len(f.fields) > 0 {
			f.prepareFieldInput()
		}
		return false
	}
	f.goal = g
	f.step = stepDone
	return true
}

func (f *GoalForm) prepareFieldInput() {
	field := f.fields[f.fieldIdx]
	f.input.Reset()
	f.input.Placeholder = field.Default
	f.input.Focus()
}

// View renders the form overlay.
func (f GoalForm) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", styleFormLabel.Render("new goal for"), styleRowSelected.Render(f.TrackerTitle))

	switch f.step {
	case stepTitle:
		b.WriteString(styleFormLabel.Render("Title") + "\n")
		b.WriteString(f.input.View() + "\n")

	case stepKind:
		b.WriteString(styleFormLabel.Render("Kind") + "\n")
		for i, k := range f.kinds {
			cursor := "  "
			if i == f.kindCursor {
				cursor = styleSelection.Render(selectionIndicator) + " "
			}
			fmt.Fprintf(&b, "%s%-12s %s\n", cursor, string(k), styleFormHelp.Render(goal.Description(k)))
		}

	case stepPeriod:
		b.WriteString(styleFormLabel.Render("Period") + "\n")
		for i, p := range tracker.Periods {
			cursor := "  "
			if i == f.perCursor {
				cursor = styleSelection.Render(selectionIndicator) + " "
			}
			fmt.Fprintf(&b, "%s%s\n", cursor, string(p))
		}

	case stepFields:
		field := f.fields[f.fieldIdx]
		label := field.Prompt
		if field.Optional {
			label += styleFormHelp.Render(" (optional)")
		}
		b.WriteString(styleFormLabel.Render(label) + "\n")
		b.WriteString(f.input.View() + "\n")
		fmt.Fprintf(&b, "%s\n", styleDim.Render(fmt.Sprintf("field %d/%d", f.fieldIdx+1, len(f.fields))))
	}

	if f.errMsg != "" {
		b.WriteString("\n" + styleError.Render(f.errMsg) + "\n")
	}
	b.WriteString("\n" + styleFormHelp.Render("enter: next · esc: cancel"))
	return stylePanelBorder.Render(b.String())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
