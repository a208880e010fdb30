package token

import (
	"lottery_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	key := []byte("secret")
	account := &model.Account{ID: 7, Address: "alice"}

	tok, err := GenerateAccessToken(account, key, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, key)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Address)
	assert.Equal(t, "7", claims.ID)

	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateAccessToken(account, key, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, key)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	tok, hash, err := NewRefreshToken()
	require.NoError(t, err)
	assert.Equal(t, HashRefreshToken(tok), hash)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken(tok+"x", hash))

	other, _, err := NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
