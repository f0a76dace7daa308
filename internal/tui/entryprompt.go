package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/orbit/internal/tracker"
)

// EntryPrompt is the single-line value input shown when logging an
// entry against the selected tracker. The raw text is parsed against
// the tracker's type before the prompt closes, so a typo never
// reaches the store.
type EntryPrompt struct {
	TrackerTitle string

	typ    tracker.Type
	input  textinput.Model
	errMsg string

	value tracker.Value
	done  bool
}

func NewEntryPrompt(t *tracker.Tracker) EntryPrompt {
	in := textinput.New()
	in.Placeholder = placeholderFor(t.Type)
	in.Focus()
	in.CharLimit = 64
	in.Width = 32
	return EntryPrompt{TrackerTitle: t.Title, typ: t.Type, input: in}
}

func placeholderFor(typ tracker.Type) string {
	switch typ {
	case tracker.TypeBool:
		return "yes / no"
	case tracker.TypeString:
		return "text"
	default:
		return "amount"
	}
}

// Done reports whether the prompt finished, and the parsed value if so.
func (p *EntryPrompt) Done() (tracker.Value, bool) {
	return p.value, p.done
}

// Update advances the prompt. Returns true when the caller should
// close it (value accepted or cancelled).
func (p *EntryPrompt) Update(msg tea.Msg) (closed bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return true, nil
		case "enter":
			v, err := tracker.ParseValue(p.typ, strings.TrimSpace(p.input.Value()))
			if err != nil {
				p.errMsg = err.Error()
				return false, nil
			}
			p.value, p.done = v, true
			return true, nil
		}
	}
	p.input, cmd = p.input.Update(msg)
	return false, cmd
}

func (p EntryPrompt) View() string {
	var b strings.Builder
	b.WriteString(styleFormLabel.Render("log entry for") + " " + styleRowSelected.Render(p.TrackerTitle) + "\n\n")
	b.WriteString(p.input.View() + "\n")
	if p.errMsg != "" {
		b.WriteString("\n" + styleError.Render(p.errMsg) + "\n")
	}
	b.WriteString("\n" + styleFormHelp.Render("enter: save · esc: cancel"))
	return stylePanelBorder.Render(b.String())
}
