package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/httperr"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth"
	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/gin-gonic/gin"
)

// RegisterUser creates an account and returns it with a session token
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerReq
	if !httperr.BindJSON(c, &req) {
		return
	}

	res, err := h.authService.Register(c.Request.Context(), identitydomain.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAuthResp(res))
}

// Login exchanges credentials for a session token
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if !httperr.BindJSON(c, &req) {
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthResp(res))
}

// Logout revokes the current session
func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), auth.Token(c)); err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Me returns the current user's profile
func (h *Handler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		httperr.Write(c, ErrNotAuthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
