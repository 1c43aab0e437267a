// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account. The account stays inactive until the
// emailed activation link is followed.
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to register user")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user":    user,
		"message": "Registration successful. Please check your email to activate your account.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid email or password") {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		if strings.Contains(err.Error(), "not activated") {
			utils.ForbiddenResponse(c, "Account is not activated")
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Login failed")
		return
	}

	utils.SuccessResponse(c, authResponse)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Refresh token is required", err.Error())
		return
	}

	authResponse, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, authResponse)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, "User")
		return
	}

	utils.SuccessResponse(c, user)
}

// Activate handles the emailed activation link. It is a browser-facing GET,
// so outcomes are reported as plain JSON with a human-readable message.
func (h *AuthHandler) Activate(c *gin.Context) {
	uid := c.Param("uid")
	token := c.Param("token")

	err := h.authService.Activate(uid, token)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Your account has been successfully activated! 🎉",
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrAlreadyActivated):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrActivationInvalid), errors.Is(err, services.ErrActivationExpired):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "An error occurred during activation: " + err.Error(),
		})
	}
}
