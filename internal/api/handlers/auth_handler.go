package handlers

import (
	"net/http"

	"github.com/atelier-nord/portfolio-backend/internal/api/middleware"
	"github.com/atelier-nord/portfolio-backend/internal/models"
	"github.com/atelier-nord/portfolio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Auth Handler
// ============================================

type AuthHandler struct {
	authService service.AuthService
}

// Login - Exchange the admin password for a bearer token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Success: true,
	})
}

// Verify - Confirm the presented token is still valid
// GET /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, models.VerifyResponse{
		Message: "Authentication valid",
		User:    middleware.GetSubject(c),
	})
}
