// Package tui provides the interactive terminal dashboard: a live
// tracker list with evaluated progress, a detail panel, an entry
// prompt, and a policy-driven goal builder. The dashboard re-reads the
// store on every write it sees, its own or another process's.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/orbit/internal/store"
	"github.com/papapumpkin/orbit/internal/telemetry"
)

// Run starts the dashboard and blocks until the user quits. The
// emitter may be nil to disable telemetry.
func Run(st *store.Store, dbPath string, em *telemetry.Emitter) error {
	w, err := store.NewWatcher(dbPath)
	if err != nil {
		return fmt.Errorf("tui: watch %s: %w", dbPath, err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("tui: watch %s: %w", dbPath, err)
	}
	defer w.Stop()

	p := tea.NewProgram(NewModel(st, em, w), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
