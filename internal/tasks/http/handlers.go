package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/httperr"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if !httperr.BindJSON(c, &req) {
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), auth.UserID(c), domain.CreateTaskRequest{
		ProjectID:   req.ProjectUID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.NormalizePriority(req.Priority),
		AssigneeID:  req.AssigneeUID,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *Handler) list(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), auth.UserID(c), c.Query("project_uid"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) get(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), auth.UserID(c), c.Query("task_uid"))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusReq
	if !httperr.BindJSON(c, &req) {
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), auth.UserID(c), req.TaskUID, domain.NormalizeStatus(req.Status))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) assign(c *gin.Context) {
	var req assignReq
	if !httperr.BindJSON(c, &req) {
		return
	}

	task, err := h.tasks.UpdateAssignee(c.Request.Context(), auth.UserID(c), req.TaskUID, req.AssigneeUID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) delete(c *gin.Context) {
	var req taskRef
	if !httperr.BindJSON(c, &req) {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), auth.UserID(c), req.TaskUID); err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
