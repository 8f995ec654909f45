package repository

import (
	"context"
	"database/sql"
)

// DrawRepo handles draw history.
type DrawRepo struct {
	db *sql.DB
}

func NewDrawRepo(db *sql.DB) *DrawRepo { return &DrawRepo{db: db} }

func (r *DrawRepo) Insert(ctx context.Context, d Draw) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO draws(id, session_id, round, name, drawn_at)
	VALUES (?, ?, ?, ?, ?);
	`, d.ID, d.SessionID, d.Round, d.Name, d.DrawnAt)
	return err
}

// Recent lists the newest draws first. A non-positive limit lists all.
func (r *DrawRepo) Recent(ctx context.Context, limit int) ([]Draw, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, round, name, drawn_at FROM draws
	ORDER BY drawn_at DESC, round DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDraws(rows)
}

// BySession lists a session's draws in round order.
func (r *DrawRepo) BySession(ctx context.Context, sessionID string) ([]Draw, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, round, name, drawn_at FROM draws
	WHERE session_id = ?
	ORDER BY round`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDraws(rows)
}

func scanDraws(rows *sql.Rows) ([]Draw, error) {
	var out []Draw
	for rows.Next() {
		var d Draw
		if err := rows.Scan(&d.ID, &d.SessionID, &d.Round, &d.Name, &d.DrawnAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
