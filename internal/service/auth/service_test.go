package auth

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository/memory"
	"lottery_backend/pkg/token"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

type jwtCfg struct {
	refreshTTL time.Duration
}

func (c jwtCfg) AccessTokenSecretKey() []byte        { return secret }
func (c jwtCfg) AccessTokenDuration() time.Duration  { return time.Minute }
func (c jwtCfg) RefreshTokenDuration() time.Duration { return c.refreshTTL }

func newAuth(refreshTTL time.Duration) *serv {
	svc := NewAuthService(memory.NewTxManager(), memory.NewAccountRepository(), memory.NewAuthRepository(), jwtCfg{refreshTTL: refreshTTL})
	return svc.(*serv)
}

func TestRegisterLoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(time.Hour)

	data, err := svc.Register(ctx, &model.Account{Address: "alice", Name: "Alice", Password: "pa$$"})
	require.NoError(t, err)
	assert.NotEmpty(t, data.SessionID)
	assert.NotEmpty(t, data.RefreshToken)

	claims, err := token.VerifyToken(data.AccessToken, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Address)

	// Пароль хранится только в виде хэша
	acc, err := svc.accountRepo.GetAccountByAddress(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pa$$", acc.Password)
	assert.Zero(t, acc.Balance)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = svc.Login(ctx, "nobody", "pa$$")
	require.ErrorIs(t, err, model.ErrUnauthorized)

	login, err := svc.Login(ctx, "alice", "pa$$")
	require.NoError(t, err)
	assert.NotEqual(t, data.SessionID, login.SessionID)

	access, err := svc.Refresh(ctx, login)
	require.NoError(t, err)
	claims, err = token.VerifyToken(access, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Address)

	_, err = svc.Refresh(ctx, &model.AuthData{SessionID: login.SessionID, RefreshToken: "forged"})
	require.ErrorIs(t, err, model.ErrUnauthorized)

	require.NoError(t, svc.Logout(ctx, login.SessionID))
	_, err = svc.Refresh(ctx, login)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(time.Hour)

	_, err := svc.Register(ctx, &model.Account{Address: "", Password: "x"})
	require.ErrorIs(t, err, model.ErrInvalidParameter)
	_, err = svc.Register(ctx, &model.Account{Address: "bob", Password: ""})
	require.ErrorIs(t, err, model.ErrInvalidParameter)

	_, err = svc.Register(ctx, &model.Account{Address: "bob", Password: "x"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &model.Account{Address: "bob", Password: "y"})
	require.ErrorIs(t, err, model.ErrAccountExists)
}

func TestServiceAccountCannotLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(time.Hour)
	require.NoError(t, svc.accountRepo.EnsureAccount(ctx, "operator"))

	_, err := svc.Login(ctx, "operator", "")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestRefreshExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(-time.Second)

	data, err := svc.Register(ctx, &model.Account{Address: "carol", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, data)
	require.ErrorIs(t, err, model.ErrUnauthorized)
}
