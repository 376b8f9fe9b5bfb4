package common

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSigner(t *testing.T) (*ShareLinkSigner, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewShareLinkSigner([]byte("test-signing-secret"), client), mr
}

func TestShareLinkSigner_TokenRoundTrip(t *testing.T) {
	signer, _ := setupSigner(t)
	ctx := context.Background()

	token, err := signer.GenerateShareToken("Juan Dela Cruz", "contract.pdf", 24*time.Hour)
	require.NoError(t, err)

	claims, err := signer.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", claims.Client)
	assert.Equal(t, "contract.pdf", claims.File)
	assert.NotEmpty(t, claims.TokenID)
}

func TestShareLinkSigner_BurnedTokenStaysBurned(t *testing.T) {
	signer, mr := setupSigner(t)
	ctx := context.Background()

	token, err := signer.GenerateShareToken("Juan Dela Cruz", "contract.pdf", 24*time.Hour)
	require.NoError(t, err)

	claims, err := signer.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, signer.MarkTokenAsUsed(ctx, claims.TokenID, claims.ExpiresAt))

	_, err = signer.ValidateToken(ctx, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")

	// The burn record must live as long as the token does. A shorter TTL
	// would let the link resolve again once the record expired.
	mr.FastForward(16 * time.Minute)
	_, err = signer.ValidateToken(ctx, token)
	require.Error(t, err, "spent token validated again after the burn record expired early")
	assert.Contains(t, err.Error(), "already used")

	ttl := mr.TTL("used_token:" + claims.TokenID)
	assert.Greater(t, ttl, 23*time.Hour, "burn record TTL should match the token lifetime")
}

func TestShareLinkSigner_ExpiredTokenRejected(t *testing.T) {
	signer, _ := setupSigner(t)

	token, err := signer.GenerateShareToken("Juan Dela Cruz", "contract.pdf", -time.Minute)
	require.NoError(t, err)

	_, err = signer.ValidateToken(context.Background(), token)
	require.Error(t, err)
}

func TestShareLinkSigner_TamperedTokenRejected(t *testing.T) {
	signer, mr := setupSigner(t)

	other := NewShareLinkSigner([]byte("some-other-secret"), redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	token, err := other.GenerateShareToken("Juan Dela Cruz", "contract.pdf", time.Hour)
	require.NoError(t, err)

	_, err = signer.ValidateToken(context.Background(), token)
	require.Error(t, err)
}
