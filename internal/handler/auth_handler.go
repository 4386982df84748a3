package handler

import (
	"net/http"
	"strings"

	"bizops-dashboard/internal/service"
	"bizops-dashboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, token refresh and logout.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the body of POST /api/auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pair, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		log.Warnf("Login: rejected user %q: %v", req.Username, err)
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		log.Warnf("RefreshToken: failed to refresh token: %v", err)
		respondError(c, err, "Token")
		return
	}
	log.Info("Token refreshed successfully")
	c.JSON(http.StatusOK, pair)
}

// Logout revokes the bearer token of the request.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.authService.Logout(c.Request.Context(), tokenString); err != nil {
		respondError(c, err, "Token")
		return
	}
	c.Status(http.StatusNoContent)
}
