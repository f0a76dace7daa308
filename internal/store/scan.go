package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/papapumpkin/orbit/internal/goal"
	"github.com/papapumpkin/orbit/internal/tracker"
)

// goalColumns is the shared SELECT list for goal rows; scanGoal depends
// on this exact order.
const goalColumns = `SELECT id, title, kind, period,
	amount, unit, min_amount, max_amount, mode,
	target, current, target_percentage, current_percentage,
	target_streak, current_streak, best_streak,
	old_behavior, new_behavior`

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTracker(row rowScanner) (tracker.Tracker, error) {
	var t tracker.Tracker
	var typ, ts string
	if err := row.Scan(&t.ID, &t.Title, &typ, &t.Category, &ts); err != nil {
		if err == sql.ErrNoRows {
			return tracker.Tracker{}, err
		}
		return tracker.Tracker{}, fmt.Errorf("store: scan tracker: %w", err)
	}
	created, err := parseTimestamp(ts)
	if err != nil {
		return tracker.Tracker{}, fmt.Errorf("store: parse tracker timestamp: %w", err)
	}
	t.Type, t.CreatedAt = tracker.Type(typ), created
	return t, nil
}

// scanGoal reads one goal row into its wire record and re-validates it
// for the owning tracker's type, so a row tampered with outside the
// validator surfaces as an error instead of a misleading zero target.
func scanGoal(row rowScanner, typ tracker.Type) (tracker.Goal, error) {
	var id int64
	var rec tracker.GoalRecord
	var kind, period string
	if err := row.Scan(&id, &rec.Title, &kind, &period,
		&rec.Amount, &rec.Unit, &rec.MinAmount, &rec.MaxAmount, &rec.Mode,
		&rec.Target, &rec.Current, &rec.TargetPercentage, &rec.CurrentPercentage,
		&rec.TargetStreak, &rec.CurrentStreak, &rec.BestStreak,
		&rec.OldBehavior, &rec.NewBehavior); err != nil {
		return tracker.Goal{}, fmt.Errorf("store: scan goal: %w", err)
	}
	rec.Kind, rec.Period = tracker.Kind(kind), tracker.Period(period)

	g, err := goal.Validate(rec, typ)
	if err != nil {
		return tracker.Goal{}, fmt.Errorf("store: stored goal %q: %w", rec.Title, err)
	}
	g.ID = id
	return g, nil
}

// insertGoal writes one goal record at the given list position inside
// an open transaction.
func insertGoal(ctx context.Context, tx *sql.Tx, trackerID int64, position int, rec tracker.GoalRecord) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO goals (
			tracker_id, position, title, kind, period,
			amount, unit, min_amount, max_amount, mode,
			target, current, target_percentage, current_percentage,
			target_streak, current_streak, best_streak,
			old_behavior, new_behavior
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trackerID, position, rec.Title, string(rec.Kind), string(rec.Period),
		rec.Amount, rec.Unit, rec.MinAmount, rec.MaxAmount, rec.Mode,
		rec.Target, rec.Current, rec.TargetPercentage, rec.CurrentPercentage,
		rec.TargetStreak, rec.CurrentStreak, rec.BestStreak,
		rec.OldBehavior, rec.NewBehavior)
	if err != nil {
		return fmt.Errorf("store: insert goal %q: %w", rec.Title, err)
	}
	return nil
}

// timestampFormats lists the formats SQLite drivers may produce for
// stored timestamps. modernc.org/sqlite typically returns RFC 3339,
// while canonical SQLite returns the space-separated DateTime format.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamp attempts to parse a SQLite timestamp string using known formats.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}
