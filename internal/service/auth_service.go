package service

import (
	"context"
	"errors"
	"time"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/hash"
	"bizops-dashboard/pkg/token"
)

// RoleAdmin is the role carried by tokens of the configured administrator.
const RoleAdmin = "ADMIN"

// TokenPair is returned by Login and Refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService issues tokens for the dashboard administrator.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
	// Authenticate verifies an access token that has not been revoked.
	Authenticate(ctx context.Context, accessToken string) (*token.Claims, error)
}

type authService struct {
	cfg        config.AuthConfig
	jwtManager *token.JWTManager
	blacklist  repository.TokenBlacklist
}

func NewAuthService(cfg config.AuthConfig, jwtManager *token.JWTManager, blacklist repository.TokenBlacklist) AuthService {
	return &authService{cfg: cfg, jwtManager: jwtManager, blacklist: blacklist}
}

func (s *authService) Login(_ context.Context, username, password string) (*TokenPair, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" || username != s.cfg.AdminUsername {
		return nil, ErrInvalidCredentials
	}
	if !hash.CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(username, RoleAdmin)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken, token.KindRefresh)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if revoked, err := s.blacklist.IsRevoked(ctx, refreshToken); err != nil {
		return nil, err
	} else if revoked {
		return nil, ErrInvalidCredentials
	}
	if claims.Username != s.cfg.AdminUsername {
		return nil, ErrInvalidCredentials
	}
	// Rotate: the old refresh token cannot be used twice.
	if err := s.blacklist.Revoke(ctx, refreshToken, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, err
	}
	return s.issue(claims.Username, claims.Role)
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtManager.VerifyToken(accessToken, token.KindAccess)
	if err != nil {
		return ErrInvalidCredentials
	}
	return s.blacklist.Revoke(ctx, accessToken, time.Until(claims.ExpiresAt.Time))
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*token.Claims, error) {
	claims, err := s.jwtManager.VerifyToken(accessToken, token.KindAccess)
	if err != nil {
		return nil, err
	}
	revoked, err := s.blacklist.IsRevoked(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.New("token revoked")
	}
	return claims, nil
}

func (s *authService) issue(username, role string) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateToken(username, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(username, role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
