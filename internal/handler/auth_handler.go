package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"renty/internal/service"
)

// AuthHandler handles landlord signup and login.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input service.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), input)
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Printf("authHandler.Signup: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondCreated(c, result)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Printf("authHandler.Login: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, result)
}
