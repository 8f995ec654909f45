package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskraffle/internal/database"
	"github.com/jask/jaskraffle/internal/database/repository"
	"github.com/jask/jaskraffle/internal/raffle"
)

func TestDrawRecorderRecordsSessionDraws(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	draws := repository.NewDrawRepo(db)
	sessions := repository.NewSessionRepo(db)
	rec, err := Begin(ctx, draws, sessions, "participants.txt", 3, 50)
	require.NoError(t, err)
	require.NotEmpty(t, rec.SessionID)

	require.NoError(t, rec.Record(ctx, raffle.Draw{Participant: raffle.Participant{Name: "Bob", IsWinner: true}, Round: 1}))
	require.NoError(t, rec.Record(ctx, raffle.Draw{Participant: raffle.Participant{Name: "Alice", IsWinner: true}, Round: 2}))

	got, err := draws.BySession(ctx, rec.SessionID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Bob", got[0].Name)
	require.Equal(t, 2, got[1].Round)

	s, err := sessions.Get(ctx, rec.SessionID)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, 3, s.RosterSize)

	maint := &MaintenanceService{DB: db}
	require.NoError(t, maint.Reset(ctx))
	got, err = draws.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMaintenanceWithoutDB(t *testing.T) {
	require.Error(t, (&MaintenanceService{}).Reset(context.Background()))
}
