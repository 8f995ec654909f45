package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jaskraffle/internal/database"
	"github.com/jask/jaskraffle/internal/database/repository"
	"github.com/jask/jaskraffle/internal/raffle"
)

// DrawRecorder persists finalized draws for one picker session.
type DrawRecorder struct {
	Draws     *repository.DrawRepo
	Sessions  *repository.SessionRepo
	SessionID string
}

// Begin registers a new session and returns a recorder stamped with it.
func Begin(ctx context.Context, draws *repository.DrawRepo, sessions *repository.SessionRepo, rosterPath string, rosterSize, rounds int) (*DrawRecorder, error) {
	id := uuid.NewString()
	s := repository.Session{
		ID:         id,
		RosterPath: rosterPath,
		RosterSize: rosterSize,
		Rounds:     rounds,
		StartedAt:  database.Now(),
	}
	if err := sessions.Insert(ctx, s); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &DrawRecorder{Draws: draws, Sessions: sessions, SessionID: id}, nil
}

// Record stores d under the recorder's session.
func (r *DrawRecorder) Record(ctx context.Context, d raffle.Draw) error {
	row := repository.Draw{
		ID:        uuid.NewString(),
		SessionID: r.SessionID,
		Round:     d.Round,
		Name:      d.Participant.Name,
		DrawnAt:   database.Now(),
	}
	if err := r.Draws.Insert(ctx, row); err != nil {
		return fmt.Errorf("record draw %d: %w", d.Round, err)
	}
	return nil
}
