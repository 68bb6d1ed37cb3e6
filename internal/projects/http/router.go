package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.POST("/create", h.create)
	rg.GET("/list", h.list)
	rg.GET("/members", h.listMembers)
	rg.POST("/invite", h.invite)
}
