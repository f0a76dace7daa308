// Package store persists trackers, their entries, and their goals in a
// local SQLite database. The core packages treat it as the single
// authority: every CLI or TUI call re-reads state from here, so
// concurrent invocations resolve last-writer-wins at this layer.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/orbit/internal/goal"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// Sentinel errors for absent rows.
var (
	ErrTrackerNotFound = errors.New("tracker not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrDuplicateTitle  = errors.New("tracker title already exists")
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup. The goals table carries one
// nullable column per kind-specific wire key so a goal record
// round-trips losslessly.
const schema = `
CREATE TABLE IF NOT EXISTS trackers (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL UNIQUE,
    type       TEXT NOT NULL,
    category   TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS entries (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    tracker_id  INTEGER NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    value       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_tracker ON entries(tracker_id, recorded_at);

CREATE TABLE IF NOT EXISTS goals (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    tracker_id         INTEGER NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
    position           INTEGER NOT NULL DEFAULT 0,
    title              TEXT NOT NULL,
    kind               TEXT NOT NULL,
    period             TEXT NOT NULL,
    amount             REAL,
    unit               TEXT NOT NULL DEFAULT '',
    min_amount         REAL,
    max_amount         REAL,
    mode               TEXT NOT NULL DEFAULT '',
    target             REAL,
    current            REAL,
    target_percentage  REAL,
    current_percentage REAL,
    target_streak      INTEGER,
    current_streak     INTEGER,
    best_streak        INTEGER,
    old_behavior       TEXT NOT NULL DEFAULT '',
    new_behavior       TEXT NOT NULL DEFAULT '',
    created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store is the SQLite-backed tracker store, opened in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath, enables WAL mode,
// foreign keys, and a busy timeout, and creates the schema tables if
// they do not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer;
	// one connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// AddTracker inserts a tracker and any initial goals, validating every
// goal before the first write so a failing definition leaves nothing
// behind. Returns the new tracker ID.
func (s *Store) AddTracker(ctx context.Context, t *tracker.Tracker) (int64, error) {
	if !t.Type.Valid() {
		return 0, fmt.Errorf("store: unknown tracker type %q", t.Type)
	}
	// Re-validate up front: no partial writes on a bad goal.
	for _, g := range t.Goals {
		if _, err := goal.Validate(g.Record(), t.Type); err != nil {
			return 0, fmt.Errorf("store: goal %q: %w", g.Title, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO trackers (title, type, category, created_at) VALUES (?, ?, ?, ?)",
		t.Title, string(t.Type), t.Category, formatTimestamp(created))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("store: %w: %q", ErrDuplicateTitle, t.Title)
		}
		return 0, fmt.Errorf("store: insert tracker %q: %w", t.Title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: tracker id: %w", err)
	}

	for pos, g := range t.Goals {
		if err := insertGoal(ctx, tx, id, pos, g.Record()); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit tracker %q: %w", t.Title, err)
	}
	return id, nil
}

// AllTrackers returns every tracker with its goals and entries loaded,
// ordered by creation.
func (s *Store) AllTrackers(ctx context.Context) ([]tracker.Tracker, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, type, category, created_at FROM trackers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("store: query trackers: %w", err)
	}
	defer rows.Close()

	var trackers []tracker.Tracker
	for rows.Next() {
		t, err := scanTracker(rows)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate trackers: %w", err)
	}

	for i := range trackers {
		if err := s.hydrate(ctx, &trackers[i]); err != nil {
			return nil, err
		}
	}
	return trackers, nil
}

// TrackerByTitle returns the tracker with the given title, goals and
// entries loaded, or ErrTrackerNotFound.
func (s *Store) TrackerByTitle(ctx context.Context, title string) (*tracker.Tracker, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, type, category, created_at FROM trackers WHERE title = ?", title)
	t, err := scanTracker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: %w: %q", ErrTrackerNotFound, title)
	}
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// hydrate loads a tracker's goals and entries.
func (s *Store) hydrate(ctx context.Context, t *tracker.Tracker) error {
	goals, err := s.Goals(ctx, t.ID, t.Type)
	if err != nil {
		return err
	}
	entries, err := s.Entries(ctx, t.ID, t.Type)
	if err != nil {
		return err
	}
	t.Goals, t.Entries = goals, entries
	return nil
}

// AddEntry appends a timestamped entry. Entries are append-only; there
// is no update or delete path.
func (s *Store) AddEntry(ctx context.Context, trackerID int64, at time.Time, v tracker.Value) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO entries (tracker_id, recorded_at, value) VALUES (?, ?, ?)",
		trackerID, formatTimestamp(at), v.String())
	if err != nil {
		return 0, fmt.Errorf("store: insert entry for tracker %d: %w", trackerID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: entry id: %w", err)
	}
	return id, nil
}

// Entries returns a tracker's entries ordered oldest first, values
// parsed to the tracker's type. A stored value that no longer parses
// reports a TypeMismatchError rather than a silent zero.
func (s *Store) Entries(ctx context.Context, trackerID int64, typ tracker.Type) ([]tracker.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, recorded_at, value FROM entries WHERE tracker_id = ? ORDER BY recorded_at, id", trackerID)
	if err != nil {
		return nil, fmt.Errorf("store: query entries for tracker %d: %w", trackerID, err)
	}
	defer rows.Close()

	var entries []tracker.Entry
	for rows.Next() {
		var e tracker.Entry
		var ts, raw string
		if err := rows.Scan(&e.ID, &ts, &raw); err != nil {
			return nil, fmt.Errorf("store: scan entry: %w", err)
		}
		at, err := parseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("store: parse entry timestamp: %w", err)
		}
		v, err := tracker.ParseValue(typ, raw)
		if err != nil {
			return nil, fmt.Errorf("store: entry %d: %w", e.ID, err)
		}
		e.Timestamp, e.Value = at, v
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate entries: %w", err)
	}
	return entries, nil
}

// AddGoal appends a goal to a tracker's ordered list after validating
// it against the tracker's type.
func (s *Store) AddGoal(ctx context.Context, trackerID int64, g tracker.Goal) (int64, error) {
	typ, err := s.trackerType(ctx, trackerID)
	if err != nil {
		return 0, err
	}
	if _, err := goal.Validate(g.Record(), typ); err != nil {
		return 0, fmt.Errorf("store: goal %q: %w", g.Title, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var next int
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position)+1, 0) FROM goals WHERE tracker_id = ?", trackerID).Scan(&next); err != nil {
		return 0, fmt.Errorf("store: next goal position: %w", err)
	}
	if err := insertGoal(ctx, tx, trackerID, next, g.Record()); err != nil {
		return 0, err
	}
	var id int64
	if err := tx.QueryRowContext(ctx, "SELECT last_insert_rowid()").Scan(&id); err != nil {
		return 0, fmt.Errorf("store: goal id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit goal %q: %w", g.Title, err)
	}
	return id, nil
}

// Goals returns a tracker's goals in list order. Each stored record is
// re-validated on the way out; a tampered row surfaces as an error so
// no misleading progress is ever derived from it.
func (s *Store) Goals(ctx context.Context, trackerID int64, typ tracker.Type) ([]tracker.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		goalColumns+" FROM goals WHERE tracker_id = ? ORDER BY position, id", trackerID)
	if err != nil {
		return nil, fmt.Errorf("store: query goals for tracker %d: %w", trackerID, err)
	}
	defer rows.Close()

	var goals []tracker.Goal
	for rows.Next() {
		g, err := scanGoal(rows, typ)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal overwrites a goal's record fields. The external flows that
// maintain milestone positions, percentages, and streak counters go
// through here; entry rows are never touched.
func (s *Store) UpdateGoal(ctx context.Context, goalID int64, rec tracker.GoalRecord) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE goals SET
			title = ?, kind = ?, period = ?,
			amount = ?, unit = ?, min_amount = ?, max_amount = ?, mode = ?,
			target = ?, current = ?, target_percentage = ?, current_percentage = ?,
			target_streak = ?, current_streak = ?, best_streak = ?,
			old_behavior = ?, new_behavior = ?
		WHERE id = ?`,
		rec.Title, string(rec.Kind), string(rec.Period),
		rec.Amount, rec.Unit, rec.MinAmount, rec.MaxAmount, rec.Mode,
		rec.Target, rec.Current, rec.TargetPercentage, rec.CurrentPercentage,
		rec.TargetStreak, rec.CurrentStreak, rec.BestStreak,
		rec.OldBehavior, rec.NewBehavior, goalID)
	if err != nil {
		return fmt.Errorf("store: update goal %d: %w", goalID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: update goal rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store: %w: id %d", ErrGoalNotFound, goalID)
	}
	return nil
}

// DeleteGoal removes a goal without touching the tracker or its entries.
func (s *Store) DeleteGoal(ctx context.Context, goalID int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", goalID)
	if err != nil {
		return fmt.Errorf("store: delete goal %d: %w", goalID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete goal rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store: %w: id %d", ErrGoalNotFound, goalID)
	}
	return nil
}

// DeleteTracker removes a tracker; its entries and goals cascade.
func (s *Store) DeleteTracker(ctx context.Context, trackerID int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trackers WHERE id = ?", trackerID)
	if err != nil {
		return fmt.Errorf("store: delete tracker %d: %w", trackerID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete tracker rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("store: %w: id %d", ErrTrackerNotFound, trackerID)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) trackerType(ctx context.Context, trackerID int64) (tracker.Type, error) {
	var typ string
	err := s.db.QueryRowContext(ctx, "SELECT type FROM trackers WHERE id = ?", trackerID).Scan(&typ)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("store: %w: id %d", ErrTrackerNotFound, trackerID)
	}
	if err != nil {
		return "", fmt.Errorf("store: tracker type for %d: %w", trackerID, err)
	}
	return tracker.Type(typ), nil
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite reports constraint failures in the message;
	// matching on it avoids importing driver internals.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
