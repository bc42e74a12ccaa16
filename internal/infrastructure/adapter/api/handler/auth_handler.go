package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/pennyledger/finance-tracker/internal/domain/error"
	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
	"github.com/pennyledger/finance-tracker/internal/domain/port/usecase"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration, login, and logout requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"flashes": takeFlashes(c),
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "danger", "Invalid form submission")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := h.authUseCase.Register(c.Request.Context(), form.Username, form.Password); err != nil {
		if !domainerr.IsDuplicateUsernameError(err) && !domainerr.IsValidationError(err) {
			h.logger.Error("Registration failed", map[string]any{
				"error": err.Error(),
			})
		}
		addFlash(c, "danger", domainerr.UserMessage(err))
		c.Redirect(http.StatusFound, "/register")
		return
	}

	addFlash(c, "success", "Registered successfully. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": takeFlashes(c),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, "danger", "Invalid form submission")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.authUseCase.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		addFlash(c, "danger", domainerr.UserMessage(domainerr.ErrInvalidCredentials))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := middleware.SetSessionUser(c, user.ID); err != nil {
		h.logger.Error("Failed to save session", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSessionUser(c); err != nil {
		h.logger.Error("Failed to clear session", map[string]any{
			"error": err.Error(),
		})
	}
	c.Redirect(http.StatusFound, "/login")
}
