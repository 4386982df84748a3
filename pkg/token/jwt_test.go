package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("s3cret", 1, 1)
	tok, err := m.GenerateToken("admin", "admin")
	require.NoError(t, err)

	claims, err := m.VerifyToken(tok, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	m := NewJWTManager("s3cret", 1, 1)
	tok, err := m.GenerateRefreshToken("admin", "admin")
	require.NoError(t, err)

	_, err = m.VerifyToken(tok, KindAccess)
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = m.VerifyToken(tok, KindRefresh)
	assert.NoError(t, err)
}

func TestVerifyRejectsOtherSecretAndExpired(t *testing.T) {
	tok, err := NewJWTManager("one", 1, 1).GenerateToken("admin", "admin")
	require.NoError(t, err)
	_, err = NewJWTManager("two", 1, 1).VerifyToken(tok, KindAccess)
	assert.Error(t, err)

	expired, err := NewJWTManager("one", -1, 1).GenerateToken("admin", "admin")
	require.NoError(t, err)
	_, err = NewJWTManager("one", 1, 1).VerifyToken(expired, KindAccess)
	assert.Error(t, err)
}
