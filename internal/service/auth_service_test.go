package service

import (
	"context"
	"testing"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/hash"
	"bizops-dashboard/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) AuthService {
	t.Helper()
	hashed, err := hash.HashPassword("s3cret")
	require.NoError(t, err)
	cfg := config.AuthConfig{Enabled: true, AdminUsername: "admin", AdminPasswordHash: hashed}
	return NewAuthService(cfg, token.NewJWTManager("test-secret", 1, 1), repository.NewTokenBlacklist(nil))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	pair, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := auth.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = auth.Authenticate(ctx, pair.RefreshToken)
	assert.Error(t, err)

	_, err = auth.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithoutConfiguredAdmin(t *testing.T) {
	auth := NewAuthService(config.AuthConfig{}, token.NewJWTManager("x", 1, 1), repository.NewTokenBlacklist(nil))
	_, err := auth.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	pair, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	next, err := auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)

	_, err = auth.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	pair, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx, pair.AccessToken))

	_, err = auth.Authenticate(ctx, pair.AccessToken)
	assert.Error(t, err)
}
