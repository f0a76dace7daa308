// Package tracker defines the core data model: trackers, their typed
// entries, and the goals attached to them. Evaluation and validation live
// in the progress and goal packages; persistence lives in store.
package tracker

import "time"

// Type is the primitive value type of a tracker. It is fixed at creation
// and every entry recorded against the tracker must parse to it.
type Type string

const (
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
	TypeString Type = "str"
)

// Types lists all tracker types in display order.
var Types = []Type{TypeInt, TypeFloat, TypeBool, TypeString}

// Valid reports whether t is one of the four known tracker types.
func (t Type) Valid() bool {
	switch t {
	case TypeInt, TypeFloat, TypeBool, TypeString:
		return true
	}
	return false
}

// Numeric reports whether the type carries a numeric value.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// Entry is a single timestamped measurement. Entries are append-only:
// once recorded they are never mutated.
type Entry struct {
	ID        int64
	Timestamp time.Time
	Value     Value
}

// Tracker is a user-defined metric series of one primitive type. A
// tracker holds zero or more goals, ordered; only the first is
// authoritative for progress display.
type Tracker struct {
	ID        int64
	Title     string
	Type      Type
	Category  string
	CreatedAt time.Time
	Goals     []Goal
	Entries   []Entry
}

// PrimaryGoal returns the first goal in the list, or nil when the tracker
// has none. Later goals are retained in the model but ignored by the
// display paths.
func (t *Tracker) PrimaryGoal() *Goal {
	if len(t.Goals) == 0 {
		return nil
	}
	return &t.Goals[0]
}

// LatestEntry returns the most recently recorded entry, or nil when the
// tracker has none. Entries is ordered oldest first.
func (t *Tracker) LatestEntry() *Entry {
	if len(t.Entries) == 0 {
		return nil
	}
	return &t.Entries[len(t.Entries)-1]
}
