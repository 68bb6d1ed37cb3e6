package http

import (
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
	"github.com/gin-gonic/gin"
)

var ErrNotAuthenticated = apperr.New(apperr.Unauthorized, "user not authenticated")

// Register attaches the credential endpoints to public and the session
// endpoints to protected, which must run middleware.RequireUser.
func (h *Handler) Register(public, protected gin.IRoutes) {
	public.POST("/register", h.RegisterUser)
	public.POST("/login", h.Login)

	protected.POST("/logout", h.Logout)
	protected.GET("/me", h.Me)
}
