package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskraffle/internal/database"
)

func TestSessionRepoInsertAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "draws.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewSessionRepo(db)

	started := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, Session{ID: "s1", RosterPath: "participants.txt", RosterSize: 12, Rounds: 50, StartedAt: started}))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 12, got.RosterSize)
	require.Equal(t, 50, got.Rounds)
	require.True(t, got.StartedAt.Equal(started))

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}
