package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/orbit/internal/store"
	"github.com/papapumpkin/orbit/internal/telemetry"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// mode tracks which surface owns the keyboard.
type mode int

const (
	modeList mode = iota
	modeDetail
	modeGoalForm
	modeEntry
)

// Model is the root bubbletea model: a tracker list with a detail
// panel, plus two modal overlays (entry prompt, goal builder). All
// state shown is re-read from the store after every write, and the
// database watcher pushes refreshes when another process writes.
type Model struct {
	store   *store.Store
	emitter *telemetry.Emitter
	watcher *store.Watcher
	keys    KeyMap

	mode   mode
	list   ListView
	detail DetailPanel
	form   *GoalForm
	prompt *EntryPrompt

	width  int
	height int
	flash  string
}

// NewModel creates the root model. The watcher may be nil, in which
// case the view only refreshes on its own writes and manual refresh.
func NewModel(st *store.Store, em *telemetry.Emitter, w *store.Watcher) Model {
	return Model{
		store:   st,
		emitter: em,
		watcher: w,
		keys:    DefaultKeyMap(),
		detail:  NewDetailPanel(60, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTrackers(), m.waitForChange())
}

// loadTrackers re-reads every tracker from the store.
func (m Model) loadTrackers() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		trackers, err := st.AllTrackers(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTrackersLoaded{Trackers: trackers}
	}
}

// waitForChange blocks on the watcher channel; it re-arms itself in
// Update after each delivery.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return MsgStoreChanged{}
	}
}

func (m Model) saveEntry(t tracker.Tracker, v tracker.Value) tea.Cmd {
	st, em := m.store, m.emitter
	return func() tea.Msg {
		if _, err := st.AddEntry(context.Background(), t.ID, time.Now(), v); err != nil {
			return MsgError{Err: err}
		}
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindEntryLogged,
			Tracker: t.Title,
			Data:    map[string]string{"value": v.String()},
		})
		return MsgEntrySaved{Tracker: t.Title}
	}
}

func (m Model) saveGoal(t tracker.Tracker, g tracker.Goal) tea.Cmd {
	st, em := m.store, m.emitter
	return func() tea.Msg {
		id, err := st.AddGoal(context.Background(), t.ID, g)
		if err != nil {
			return MsgError{Err: err}
		}
		em.Emit(telemetry.Event{
			Kind:    telemetry.KindGoalCreated,
			Tracker: t.Title,
			GoalID:  id,
			Data:    map[string]string{"kind": string(g.Kind), "title": g.Title},
		})
		return MsgGoalSaved{Tracker: t.Title, Goal: g.Title}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.Width = msg.Width
		m.detail.Resize(msg.Width, msg.Height-2)
		return m, nil

	case MsgTrackersLoaded:
		cursor := m.list.Cursor
		m.list = NewListView(msg.Trackers)
		m.list.Width = m.width
		if cursor < len(m.list.Rows) {
			m.list.Cursor = cursor
		}
		if m.mode == modeDetail {
			if m.list.Selected() == nil {
				m.mode = modeList
			} else {
				m.detail.SetTracker(m.list.Rows[m.list.Cursor])
			}
		}
		return m, nil

	case MsgStoreChanged:
		return m, tea.Batch(m.loadTrackers(), m.waitForChange())

	case MsgEntrySaved:
		m.flash = fmt.Sprintf("logged to %s", msg.Tracker)
		return m, m.loadTrackers()

	case MsgGoalSaved:
		m.flash = fmt.Sprintf("goal %q added to %s", msg.Goal, msg.Tracker)
		return m, m.loadTrackers()

	case MsgError:
		m.flash = styleError.Render(msg.Err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages go to the open overlay.
	switch m.mode {
	case modeGoalForm:
		_, cmd := m.form.Update(msg)
		return m, cmd
	case modeEntry:
		_, cmd := m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal overlays swallow all keys until closed.
	switch m.mode {
	case modeGoalForm:
		closed, cmd := m.form.Update(msg)
		if !closed {
			return m, cmd
		}
		t := m.list.Selected()
		g, done := m.form.Done()
		m.mode, m.form = modeList, nil
		if done && t != nil {
			return m, m.saveGoal(*t, g)
		}
		return m, nil

	case modeEntry:
		closed, cmd := m.prompt.Update(msg)
		if !closed {
			return m, cmd
		}
		t := m.list.Selected()
		v, done := m.prompt.Done()
		m.mode, m.prompt = modeList, nil
		if done && t != nil {
			return m, m.saveEntry(*t, v)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
		m.syncDetail()

	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
		m.syncDetail()

	case key.Matches(msg, m.keys.Enter):
		if m.list.Selected() != nil {
			m.mode = modeDetail
			m.detail.SetTracker(m.list.Rows[m.list.Cursor])
		}

	case key.Matches(msg, m.keys.Back):
		m.mode = modeList

	case key.Matches(msg, m.keys.Log):
		if t := m.list.Selected(); t != nil {
			p := NewEntryPrompt(t)
			m.prompt = &p
			m.mode = modeEntry
		}

	case key.Matches(msg, m.keys.NewGoal):
		if t := m.list.Selected(); t != nil {
			f := NewGoalForm(t)
			m.form = &f
			m.mode = modeGoalForm
		}

	case key.Matches(msg, m.keys.Refresh):
		m.flash = ""
		return m, m.loadTrackers()
	}

	return m, nil
}

func (m *Model) syncDetail() {
	if m.mode == modeDetail && m.list.Selected() != nil {
		m.detail.SetTracker(m.list.Rows[m.list.Cursor])
	}
}

func (m Model) View() string {
	done := 0
	for _, row := range m.list.Rows {
		if row.Err == nil && row.Report.Completed {
			done++
		}
	}
	bar := statusBar(m.width, len(m.list.Rows), done, m.flash)

	var body string
	switch m.mode {
	case modeGoalForm:
		body = m.form.View()
	case modeEntry:
		body = m.prompt.View()
	case modeDetail:
		body = m.detail.View()
	default:
		if len(m.list.Rows) == 0 {
			body = styleDim.Render("\n  no trackers yet — add one with `orbit tracker add`\n")
		} else {
			body = m.list.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, body, footer(m.width))
}
