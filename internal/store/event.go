package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StarEventData captures one reward mutation for the audit log.
type StarEventData struct {
	SessionID string
	Activity  string
	Category  string
	Stars     int
	Reason    string
}

// StarEventRecord is a persisted star event.
type StarEventRecord struct {
	ID        int
	SessionID string
	Activity  string
	Category  string
	Stars     int
	Reason    string
	CreatedAt time.Time
}

// StarTotals aggregates the event log for the stats command.
type StarTotals struct {
	Total      int
	ByActivity map[string]int
}

// StarEventRepo provides append and aggregate access to the star event log.
// Every stars mutation made through the ledger lands here, so the log can be
// audited against the profile counter.
type StarEventRepo interface {
	Append(ctx context.Context, data StarEventData) error
	Totals(ctx context.Context) (*StarTotals, error)
	Recent(ctx context.Context, limit int) ([]StarEventRecord, error)
}

type starEventRepo struct {
	db *sql.DB
}

func (r *starEventRepo) Append(ctx context.Context, data StarEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO star_events (session_id, activity, category, stars, reason)
		 VALUES (?, ?, ?, ?, ?)`,
		data.SessionID, data.Activity, data.Category, data.Stars, data.Reason,
	)
	if err != nil {
		return fmt.Errorf("append star event: %w", err)
	}
	return nil
}

func (r *starEventRepo) Totals(ctx context.Context) (*StarTotals, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT activity, COALESCE(SUM(stars), 0) FROM star_events GROUP BY activity`,
	)
	if err != nil {
		return nil, fmt.Errorf("query star totals: %w", err)
	}
	defer rows.Close()

	totals := &StarTotals{ByActivity: make(map[string]int)}
	for rows.Next() {
		var activity string
		var stars int
		if err := rows.Scan(&activity, &stars); err != nil {
			return nil, fmt.Errorf("scan star totals: %w", err)
		}
		totals.ByActivity[activity] = stars
		totals.Total += stars
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate star totals: %w", err)
	}
	return totals, nil
}

func (r *starEventRepo) Recent(ctx context.Context, limit int) ([]StarEventRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, activity, category, stars, reason, created_at
		 FROM star_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query star events: %w", err)
	}
	defer rows.Close()

	var out []StarEventRecord
	for rows.Next() {
		var rec StarEventRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Activity, &rec.Category,
			&rec.Stars, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan star event: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate star events: %w", err)
	}
	return out, nil
}
