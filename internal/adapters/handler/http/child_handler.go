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

type ChildHandler struct {
	svc        *services.ChildService
	sessions   *services.SessionService
	sessionTTL time.Duration
}

func NewChildHandler(svc *services.ChildService, sessions *services.SessionService, sessionTTL time.Duration) *ChildHandler {
	return &ChildHandler{
		svc:        svc,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

type createChildRequest struct {
	Name  string `json:"name" binding:"required"`
	Theme string `json:"theme"`
}

type updateChildRequest struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
}

func (h *ChildHandler) RegisterRoutes(router *gin.RouterGroup) {
	children := router.Group("/children")
	{
		children.POST("", h.Create)
		children.GET("", h.List)
		children.GET("/:id", h.Get)
		children.PUT("/:id", h.Update)
		children.DELETE("/:id", h.Delete)
		children.POST("/:id/select", h.Select)
	}

	router.DELETE("/session", h.EndSession)
}

// Create godoc
// @Summary Add a child
// @Tags children
// @Accept json
// @Produce json
// @Param child body createChildRequest true "Child to add"
// @Success 201 {object} domain.Child
// @Router /children [post]
func (h *ChildHandler) Create(c *gin.Context) {
	var req createChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := h.svc.Create(c.Request.Context(), services.CreateChildInput{
		Name:  req.Name,
		Theme: req.Theme,
	})
	if err != nil {
		if errors.Is(err, domain.ErrChildNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "a child with that name already exists"})
			return
		}
		if isChildValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, child)
}

// List godoc
// @Summary List children ordered by name
// @Tags children
// @Produce json
// @Success 200 {array} domain.Child
// @Router /children [get]
func (h *ChildHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ChildHandler) Get(c *gin.Context) {
	child, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, child)
}

func (h *ChildHandler) Update(c *gin.Context) {
	var req updateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	child, err := h.svc.Update(c.Request.Context(), services.UpdateChildInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Theme: req.Theme,
	})
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		if errors.Is(err, domain.ErrChildNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "a child with that name already exists"})
			return
		}
		if isChildValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, child)
}

func (h *ChildHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Select godoc
// @Summary Select a child and start a session
// @Tags session
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} map[string]interface{}
// @Router /children/{id}/select [post]
func (h *ChildHandler) Select(c *gin.Context) {
	child, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := h.sessions.IssueToken(child.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"child": child,
		"token": token,
	})
}

// EndSession clears the session cookie. There is nothing server-side to
// revoke; the token simply expires.
func (h *ChildHandler) EndSession(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func isChildValidationError(err error) bool {
	return errors.Is(err, domain.ErrChildNameEmpty) ||
		errors.Is(err, domain.ErrChildNameTooLong) ||
		errors.Is(err, domain.ErrInvalidTheme)
}
