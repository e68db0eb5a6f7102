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

type TaskHandler struct {
	svc        *services.TaskService
	defaultLoc *time.Location
}

func NewTaskHandler(svc *services.TaskService, defaultLoc *time.Location) *TaskHandler {
	return &TaskHandler{
		svc:        svc,
		defaultLoc: defaultLoc,
	}
}

type createTaskRequest struct {
	Name      string `json:"name" binding:"required"`
	TimeOfDay string `json:"time_of_day"`
	Frequency string `json:"frequency"`
	Weekdays  []int  `json:"weekdays"`
	Position  int    `json:"position"`
}

type updateTaskRequest struct {
	Name      string `json:"name"`
	TimeOfDay string `json:"time_of_day"`
	Frequency string `json:"frequency"`
	Weekdays  []int  `json:"weekdays"`
	Active    *bool  `json:"active"`
	Position  *int   `json:"position"`
}

type dayTaskResponse struct {
	*domain.Task
	Done bool `json:"done"`
}

// RegisterCaregiverRoutes mounts the management endpoints, which carry no
// session: the caregiver edits the chart, the child only checks it off.
func (h *TaskHandler) RegisterCaregiverRoutes(router *gin.RouterGroup) {
	router.POST("/children/:id/tasks", h.Create)
	router.GET("/children/:id/tasks", h.ListByChild)
	router.PUT("/tasks/:id", h.Update)
	router.DELETE("/tasks/:id", h.Delete)
}

// RegisterSessionRoutes mounts the child-facing day view.
func (h *TaskHandler) RegisterSessionRoutes(router *gin.RouterGroup) {
	router.GET("/tasks", h.ListForDay)
}

// Create godoc
// @Summary Add a task to a child's chart
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Param task body createTaskRequest true "Task to add"
// @Success 201 {object} domain.Task
// @Router /children/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.svc.Create(c.Request.Context(), services.CreateTaskInput{
		ChildID:   c.Param("id"),
		Name:      req.Name,
		TimeOfDay: req.TimeOfDay,
		Frequency: req.Frequency,
		Weekdays:  req.Weekdays,
		Position:  req.Position,
	})
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		if isTaskValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListByChild returns every task on the chart, deactivated ones included,
// for the caregiver management view.
func (h *TaskHandler) ListByChild(c *gin.Context) {
	tasks, err := h.svc.ListByChildID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListForDay godoc
// @Summary List the selected child's tasks due on a date
// @Tags tasks
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Router /tasks [get]
func (h *TaskHandler) ListForDay(c *gin.Context) {
	childID, ok := middleware.GetChildID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no child selected"})
		return
	}

	loc := resolveLocation(c, h.defaultLoc)
	date := resolveDate(c, "date", loc)

	statuses, err := h.svc.ListForDay(c.Request.Context(), childID, date)
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	tasks := make([]dayTaskResponse, 0, len(statuses))
	for _, s := range statuses {
		tasks = append(tasks, dayTaskResponse{Task: s.Task, Done: s.Done})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  domain.FormatDate(date),
		"tasks": tasks,
	})
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.svc.Update(c.Request.Context(), services.UpdateTaskInput{
		ID:        c.Param("id"),
		Name:      req.Name,
		TimeOfDay: req.TimeOfDay,
		Frequency: req.Frequency,
		Weekdays:  req.Weekdays,
		Active:    req.Active,
		Position:  req.Position,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		if isTaskValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func isTaskValidationError(err error) bool {
	return errors.Is(err, domain.ErrTaskNameEmpty) ||
		errors.Is(err, domain.ErrTaskNameTooLong) ||
		errors.Is(err, domain.ErrTaskInvalidChildID) ||
		errors.Is(err, domain.ErrInvalidFrequency) ||
		errors.Is(err, domain.ErrInvalidTimeOfDay) ||
		errors.Is(err, domain.ErrInvalidWeekdays) ||
		errors.Is(err, domain.ErrInvalidPosition)
}
