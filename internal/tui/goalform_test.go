package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/orbit/internal/tracker"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func keyDown() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyDown}
}

func TestGoalForm_WalksSumScript(t *testing.T) {
	t.Parallel()

	host := &tracker.Tracker{Title: "cycling", Type: tracker.TypeInt}
	form := NewGoalForm(host)

	// Title, then kind (first allowed for int is sum), then period (day).
	form.Update(keyRunes("Weekly distance"))
	form.Update(keyEnter())
	form.Update(keyEnter())
	form.Update(keyEnter())

	// Field script for sum: amount, then optional unit.
	form.Update(keyRunes("64"))
	form.Update(keyEnter())
	form.Update(keyRunes("km"))
	closed, _ := form.Update(keyEnter())
	if !closed {
		t.Fatal("form should close after the last field")
	}

	g, done := form.Done()
	if !done {
		t.Fatal("form should report done")
	}
	if g.Title != "Weekly distance" || g.Kind != tracker.KindSum || g.Period != tracker.PeriodDay {
		t.Fatalf("goal header = %q/%s/%s", g.Title, g.Kind, g.Period)
	}
	spec, ok := g.Spec.(tracker.SumSpec)
	if !ok {
		t.Fatalf("spec type = %T, want SumSpec", g.Spec)
	}
	if spec.Amount != 64 || spec.Unit != "km" {
		t.Errorf("spec = %+v, want amount 64 unit km", spec)
	}
}

func TestGoalForm_EmptyTitleStaysOpen(t *testing.T) {
	t.Parallel()

	host := &tracker.Tracker{Title: "reading", Type: tracker.TypeBool}
	form := NewGoalForm(host)

	closed, _ := form.Update(keyEnter())
	if closed {
		t.Fatal("empty title must not advance the form")
	}
	if form.errMsg == "" {
		t.Error("expected an error message naming the title")
	}
}

func TestGoalForm_BoolKindNeedsNoFields(t *testing.T) {
	t.Parallel()

	host := &tracker.Tracker{Title: "meditate", Type: tracker.TypeBool}
	form := NewGoalForm(host)

	form.Update(keyRunes("Sit daily"))
	form.Update(keyEnter())
	form.Update(keyDown()) // count -> bool
	form.Update(keyEnter())
	closed, _ := form.Update(keyEnter()) // period: day
	if !closed {
		t.Fatal("bool goal has no field script; form should close at period")
	}

	g, done := form.Done()
	if !done || g.Kind != tracker.KindBool {
		t.Fatalf("done=%v kind=%s, want done bool goal", done, g.Kind)
	}
	if _, ok := g.Spec.(tracker.BoolSpec); !ok {
		t.Fatalf("spec type = %T, want BoolSpec", g.Spec)
	}
}

func TestGoalForm_EscCancels(t *testing.T) {
	t.Parallel()

	host := &tracker.Tracker{Title: "pushups", Type: tracker.TypeInt}
	form := NewGoalForm(host)

	closed, _ := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed {
		t.Fatal("esc should close the form")
	}
	if _, done := form.Done(); done {
		t.Error("cancelled form must not report done")
	}
}
