package tui

import (
	"github.com/papapumpkin/orbit/internal/tracker"
)

// MsgTrackersLoaded carries a fresh snapshot of every tracker, sent
// after the initial load and after every store refresh.
type MsgTrackersLoaded struct {
	Trackers []tracker.Tracker
}

// MsgStoreChanged is sent when the database watcher sees an external
// write; the model responds by re-reading authoritative state.
type MsgStoreChanged struct{}

// MsgEntrySaved is sent after an entry was written to the store.
type MsgEntrySaved struct {
	Tracker string
}

// MsgGoalSaved is sent after a goal passed validation and was written.
type MsgGoalSaved struct {
	Tracker string
	Goal    string
}

// MsgError surfaces a failure in the footer without leaving the TUI.
type MsgError struct {
	Err error
}
