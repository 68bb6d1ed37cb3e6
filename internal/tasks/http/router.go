package http

import "github.com/gin-gonic/gin"

// Register attaches task routes to the given router group.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.POST("/create", h.create)
	rg.GET("/list", h.list)
	rg.GET("/get", h.get)
	rg.POST("/update", h.updateStatus)
	rg.POST("/assign", h.assign)
	rg.POST("/delete", h.delete)
}
