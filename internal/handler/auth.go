package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeonSoftLab/SupportAPI/internal/auth"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

// LoginRecorder writes login attempts to the activity log.
type LoginRecorder interface {
	Record(ctx context.Context, employeeID int, event, status, description string)
}

type AuthHandler struct {
	svc    *auth.Service
	events LoginRecorder
}

func NewAuthHandler(svc *auth.Service, events LoginRecorder) *AuthHandler {
	return &AuthHandler{svc: svc, events: events}
}

// Login godoc
// @Summary Login
// @Description Exchanges a username/password pair for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err == nil {
		// A disabled account cannot obtain a fresh token.
		err = auth.RequireActive(user)
	}
	if err != nil {
		// Every credential rejection is audited; an unknown account has no
		// employee id. Directory outages are not login attempts.
		if h.events != nil && auth.KindOf(err) != "" {
			employeeID := 0
			if user != nil {
				employeeID = user.EmployeeID
			}
			h.events.Record(c.Request.Context(), employeeID, "login", "denied", "")
		}
		writeRejection(c, err)
		return
	}

	token, expiresIn, err := h.svc.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if h.events != nil {
		h.events.Record(c.Request.Context(), user.EmployeeID, "login", "success", "")
	}
	c.JSON(http.StatusOK, model.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}

// Me godoc
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetPrincipal(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, model.MeResponse{
		Username:   user.Username,
		EmployeeID: user.EmployeeID,
		Role:       user.Role,
	})
}
