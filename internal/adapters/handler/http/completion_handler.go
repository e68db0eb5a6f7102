package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chorechart/internal/adapters/handler/http/middleware"
	"chorechart/internal/core/domain"
	"chorechart/internal/core/services"
)

type CompletionHandler struct {
	svc        *services.CompletionService
	tasks      *services.TaskService
	defaultLoc *time.Location
}

func NewCompletionHandler(svc *services.CompletionService, tasks *services.TaskService, defaultLoc *time.Location) *CompletionHandler {
	return &CompletionHandler{
		svc:        svc,
		tasks:      tasks,
		defaultLoc: defaultLoc,
	}
}

func (h *CompletionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/tasks/:id/completion", h.MarkComplete)
	router.DELETE("/tasks/:id/completion", h.MarkIncomplete)
}

// ownedTask ensures the task belongs to the child the session was issued
// for, so one child cannot check off a sibling's chart.
func (h *CompletionHandler) ownedTask(c *gin.Context) (*domain.Task, bool) {
	childID, ok := middleware.GetChildID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no child selected"})
		return nil, false
	}

	task, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}

	if task.ChildID != childID {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return nil, false
	}

	return task, true
}

// MarkComplete godoc
// @Summary Mark a task done for a date
// @Tags completions
// @Produce json
// @Param id path string true "Task ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Router /tasks/{id}/completion [put]
func (h *CompletionHandler) MarkComplete(c *gin.Context) {
	task, ok := h.ownedTask(c)
	if !ok {
		return
	}

	loc := resolveLocation(c, h.defaultLoc)
	date := resolveDate(c, "date", loc)

	if err := h.svc.MarkComplete(c.Request.Context(), task.ID, date); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id": task.ID,
		"date":    domain.FormatDate(date),
		"done":    true,
	})
}

// MarkIncomplete godoc
// @Summary Unmark a task for a date
// @Tags completions
// @Produce json
// @Param id path string true "Task ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Router /tasks/{id}/completion [delete]
func (h *CompletionHandler) MarkIncomplete(c *gin.Context) {
	task, ok := h.ownedTask(c)
	if !ok {
		return
	}

	loc := resolveLocation(c, h.defaultLoc)
	date := resolveDate(c, "date", loc)

	if err := h.svc.MarkIncomplete(c.Request.Context(), task.ID, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id": task.ID,
		"date":    domain.FormatDate(date),
		"done":    false,
	})
}
