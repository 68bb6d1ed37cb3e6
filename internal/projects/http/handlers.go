package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/httperr"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if !httperr.BindJSON(c, &req) {
		return
	}
	if err := auth.CheckClaimedUser(c, req.UserUID); err != nil {
		httperr.Write(c, err)
		return
	}

	p, err := h.projects.Create(c.Request.Context(), auth.UserID(c), domain.CreateProjectRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) list(c *gin.Context) {
	if err := auth.CheckClaimedUser(c, c.Query("user_uid")); err != nil {
		httperr.Write(c, err)
		return
	}

	items, err := h.projects.ListForUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items})
}

func (h *Handler) listMembers(c *gin.Context) {
	projectID := c.Query("project_uid")

	if _, err := h.projects.Get(c.Request.Context(), auth.UserID(c), projectID); err != nil {
		httperr.Write(c, err)
		return
	}

	members, err := h.members.ListMembers(c.Request.Context(), projectID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *Handler) invite(c *gin.Context) {
	var req inviteReq
	if !httperr.BindJSON(c, &req) {
		return
	}

	member, err := h.members.Invite(c.Request.Context(), req.ProjectUID, auth.UserID(c), req.Email)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}
