package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-panel-server/helper"
	"admin-panel-server/middleware"
	"admin-panel-server/models"
	"admin-panel-server/services"
)

type AuthHandler struct {
	authService services.AuthService
	tokens      *services.TokenService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, tokens *services.TokenService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Email and password are required"})
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout is best-effort: a missing, malformed or expired token still gets a
// success response so clients can always clear their local session.
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if claims, err := h.tokens.VerifyAccessToken(tokenString); err == nil {
			h.authService.Logout(claims.UserID) //nolint:errcheck
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
