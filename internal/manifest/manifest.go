// Package manifest reads and writes tracker definitions as TOML files,
// for seeding a fresh store and for plain-text backup. A manifest holds
// tracker metadata and goal records, never entries; entry history lives
// only in the store.
package manifest

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/orbit/internal/goal"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// ErrNoTrackers indicates a manifest file with an empty tracker list.
var ErrNoTrackers = errors.New("manifest contains no trackers")

// TrackerDef is one tracker in a manifest file, with its goal records in
// list order.
type TrackerDef struct {
	Title    string               `toml:"title"`
	Type     tracker.Type         `toml:"type"`
	Category string               `toml:"category,omitempty"`
	Goals    []tracker.GoalRecord `toml:"goals,omitempty"`
}

// Manifest is the top-level TOML document.
type Manifest struct {
	Trackers []TrackerDef `toml:"trackers"`
}

// Load reads a manifest file and validates every tracker and goal in
// it. Nothing is persisted here; a definition that fails validation
// fails the whole load so a partial import never happens.
func Load(path string) ([]tracker.Tracker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	if len(m.Trackers) == 0 {
		return nil, fmt.Errorf("manifest: %s: %w", path, ErrNoTrackers)
	}

	var trackers []tracker.Tracker
	for _, def := range m.Trackers {
		if def.Title == "" {
			return nil, fmt.Errorf("manifest: tracker with empty title in %s", path)
		}
		if !def.Type.Valid() {
			return nil, fmt.Errorf("manifest: tracker %q: unknown type %q", def.Title, def.Type)
		}
		t := tracker.Tracker{Title: def.Title, Type: def.Type, Category: def.Category}
		for _, rec := range def.Goals {
			g, err := goal.Validate(rec, def.Type)
			if err != nil {
				return nil, fmt.Errorf("manifest: tracker %q: %w", def.Title, err)
			}
			t.Goals = append(t.Goals, g)
		}
		trackers = append(trackers, t)
	}
	return trackers, nil
}

// Write marshals trackers to a manifest file. Goal specs convert back
// to their wire records, so Load of the written file reproduces the
// same definitions.
func Write(path string, trackers []tracker.Tracker) error {
	m := Manifest{}
	for _, t := range trackers {
		def := TrackerDef{Title: t.Title, Type: t.Type, Category: t.Category}
		for _, g := range t.Goals {
			def.Goals = append(def.Goals, g.Record())
		}
		m.Trackers = append(m.Trackers, def)
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("manifest: marshal: %w", err)
	}

	// Write to a temp file and rename so a failed write never leaves a
	// truncated manifest behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("manifest: rename %s: %w", path, err)
	}
	return nil
}
