package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// Run kinds recorded in the history.
const (
	RunKindArcade    = "arcade"
	RunKindChallenge = "challenge"
)

// RunRecord is one finished mini-game run.
type RunRecord struct {
	RunID        string
	Kind         string
	Score        int
	Orbs         int
	DurationSecs float64
	CreatedAt    time.Time
}

// RunStats aggregates the history for one kind of run.
type RunStats struct {
	Runs      int
	BestScore int
	TotalOrbs int
}

// RunRepo records finished runs.
type RunRepo interface {
	// Append stores a finished run.
	Append(ctx context.Context, rec RunRecord) error

	// Stats aggregates all runs of kind.
	Stats(ctx context.Context, kind string) (RunStats, error)

	// Recent returns up to limit runs of kind, newest first.
	Recent(ctx context.Context, kind string, limit int) ([]RunRecord, error)

	// Clear deletes the whole history.
	Clear(ctx context.Context) error
}

const runsTable = "runs"

type runRepo struct {
	db *sql.DB
	b  *entsql.DialectBuilder
}

func (r *runRepo) Append(ctx context.Context, rec RunRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	query, args := r.b.Insert(runsTable).
		Columns("run_id", "kind", "score", "orbs", "duration_secs", "created_at").
		Values(rec.RunID, rec.Kind, rec.Score, rec.Orbs, rec.DurationSecs, rec.CreatedAt.Unix()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append run: %w", err)
	}
	return nil
}

func (r *runRepo) Stats(ctx context.Context, kind string) (RunStats, error) {
	query, args := r.b.Select(
		"COUNT(*)",
		"COALESCE(MAX(score), 0)",
		"COALESCE(SUM(orbs), 0)",
	).
		From(entsql.Table(runsTable)).
		Where(entsql.EQ("kind", kind)).
		Query()

	var st RunStats
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Runs, &st.BestScore, &st.TotalOrbs); err != nil {
		return RunStats{}, fmt.Errorf("run stats: %w", err)
	}
	return st, nil
}

func (r *runRepo) Recent(ctx context.Context, kind string, limit int) ([]RunRecord, error) {
	sel := r.b.Select("run_id", "kind", "score", "orbs", "duration_secs", "created_at").
		From(entsql.Table(runsTable)).
		Where(entsql.EQ("kind", kind)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var created int64
		if err := rows.Scan(&rec.RunID, &rec.Kind, &rec.Score, &rec.Orbs, &rec.DurationSecs, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt = time.Unix(created, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *runRepo) Clear(ctx context.Context) error {
	query, args := r.b.Delete(runsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}
