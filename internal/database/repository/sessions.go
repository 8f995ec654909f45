package repository

import (
	"context"
	"database/sql"
)

// SessionRepo handles picker sessions.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Insert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, roster_path, roster_size, rounds, started_at)
	VALUES (?, ?, ?, ?, ?);
	`, s.ID, s.RosterPath, s.RosterSize, s.Rounds, s.StartedAt)
	return err
}

// Get returns nil when no session has the id.
func (r *SessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, roster_path, roster_size, rounds, started_at FROM sessions WHERE id = ?`, id)
	var s Session
	if err := row.Scan(&s.ID, &s.RosterPath, &s.RosterSize, &s.Rounds, &s.StartedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
