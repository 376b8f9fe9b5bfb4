package common

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havahills/backoffice/internal/constants"
)

func setupSessions(t *testing.T) (*SessionService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionService(client), mr
}

func TestSessionService_CreateAndGet(t *testing.T) {
	sessions, _ := setupSessions(t)
	ctx := context.Background()

	id, err := sessions.CreateSession(ctx, "auth-1", "encoder@havahills.ph", constants.RoleAdmin, "", "")
	require.NoError(t, err)

	session, err := sessions.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "encoder@havahills.ph", session.Email)
	assert.Equal(t, constants.RoleAdmin, session.Role)

	require.NoError(t, sessions.DeleteSession(ctx, id))
	_, err = sessions.GetSession(ctx, id)
	require.Error(t, err)
}

func TestSessionService_IdleSessionAgesOut(t *testing.T) {
	sessions, mr := setupSessions(t)
	ctx := context.Background()

	id, err := sessions.CreateSession(ctx, "auth-1", "encoder@havahills.ph", constants.RoleAdmin, "", "")
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	_, err = sessions.GetSession(ctx, id)
	require.Error(t, err, "idle session should expire with its key")
}

func TestSessionService_RefreshSlidesExpiration(t *testing.T) {
	sessions, mr := setupSessions(t)
	ctx := context.Background()

	id, err := sessions.CreateSession(ctx, "auth-1", "encoder@havahills.ph", constants.RoleAdmin, "", "")
	require.NoError(t, err)

	// activity at hour 20 pushes the deadline out past the original 24h
	mr.FastForward(20 * time.Hour)
	session, err := sessions.GetSession(ctx, id)
	require.NoError(t, err)
	require.NoError(t, sessions.RefreshSession(ctx, session))

	mr.FastForward(20 * time.Hour)
	refreshed, err := sessions.GetSession(ctx, id)
	require.NoError(t, err, "refreshed session should outlive the original deadline")
	assert.Equal(t, session.SessionID, refreshed.SessionID)
}
