package repository

import "time"

// Draw represents a draws row: one finalized spin.
type Draw struct {
	ID        string
	SessionID string
	Round     int
	Name      string
	DrawnAt   time.Time
}

// Session represents a sessions row: one run of the picker.
type Session struct {
	ID         string
	RosterPath string
	RosterSize int
	Rounds     int
	StartedAt  time.Time
}
