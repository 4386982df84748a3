// Package token issues and verifies the JSON Web Tokens guarding write routes.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds stored in the "typ" claim.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var ErrWrongKind = errors.New("token kind mismatch")

// JWTManager signs and verifies HS256 tokens.
type JWTManager struct {
	secretKey       []byte
	accessTokenDur  time.Duration
	refreshTokenDur time.Duration
}

// Claims are the application claims carried by every token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Kind     string `json:"typ"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a manager; lifetimes are given in hours and days.
func NewJWTManager(secret string, accessTokenExpireHours, refreshTokenExpireDays int) *JWTManager {
	return &JWTManager{
		secretKey:       []byte(secret),
		accessTokenDur:  time.Hour * time.Duration(accessTokenExpireHours),
		refreshTokenDur: time.Duration(refreshTokenExpireDays) * 24 * time.Hour,
	}
}

func (m *JWTManager) sign(username, role, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

// GenerateToken issues an access token.
func (m *JWTManager) GenerateToken(username, role string) (string, error) {
	return m.sign(username, role, KindAccess, m.accessTokenDur)
}

// GenerateRefreshToken issues a longer lived refresh token.
func (m *JWTManager) GenerateRefreshToken(username, role string) (string, error) {
	return m.sign(username, role, KindRefresh, m.refreshTokenDur)
}

// VerifyToken validates signature, expiry and kind, returning the claims.
func (m *JWTManager) VerifyToken(tokenString, kind string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Kind != kind {
		return nil, ErrWrongKind
	}
	return claims, nil
}
