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

type ReviewHandler struct {
	svc        *services.ReviewService
	weekStart  domain.WeekStartDay
	defaultLoc *time.Location
}

func NewReviewHandler(svc *services.ReviewService, weekStart domain.WeekStartDay, defaultLoc *time.Location) *ReviewHandler {
	return &ReviewHandler{
		svc:        svc,
		weekStart:  weekStart,
		defaultLoc: defaultLoc,
	}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/review", h.GetWeeklyReview)
}

type reviewTaskResponse struct {
	Task         *domain.Task `json:"task"`
	Expected     int          `json:"expected"`
	Completed    int          `json:"completed"`
	Percentage   int          `json:"percentage"`
	Perfect      bool         `json:"perfect"`
	MissingDates []string     `json:"missing_dates"`
}

type reviewWeekResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type reviewResponse struct {
	Week            reviewWeekResponse   `json:"week"`
	Expected        int                  `json:"expected"`
	Completed       int                  `json:"completed"`
	Percentage      int                  `json:"percentage"`
	Perfect         bool                 `json:"perfect"`
	Tasks           []reviewTaskResponse `json:"tasks"`
	PerfectTasks    []reviewTaskResponse `json:"perfect_tasks"`
	IncompleteTasks []reviewTaskResponse `json:"incomplete_tasks"`
}

// GetWeeklyReview godoc
// @Summary Weekly summary for the selected child
// @Tags review
// @Produce json
// @Param week_start query string false "Any date in the week (YYYY-MM-DD), defaults to the current week"
// @Success 200 {object} reviewResponse
// @Router /review [get]
func (h *ReviewHandler) GetWeeklyReview(c *gin.Context) {
	childID, ok := middleware.GetChildID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no child selected"})
		return
	}

	loc := resolveLocation(c, h.defaultLoc)

	// Whatever date arrives, the review always runs on a whole week
	// anchored at the configured start day.
	anchor := domain.StartOfWeek(resolveDate(c, "week_start", loc), h.weekStart)

	result, err := h.svc.Summarize(c.Request.Context(), childID, anchor)
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, buildReviewResponse(result))
}

func buildReviewResponse(result *domain.WeeklySummaryResult) reviewResponse {
	return reviewResponse{
		Week: reviewWeekResponse{
			Start: domain.FormatDate(result.Window.Start),
			End:   domain.FormatDate(result.Window.End()),
			Label: result.Window.Label(),
		},
		Expected:        result.TotalExpected,
		Completed:       result.TotalCompleted,
		Percentage:      result.OverallPercentage(),
		Perfect:         result.Perfect(),
		Tasks:           toReviewTasks(result.TaskDetails),
		PerfectTasks:    toReviewTasks(result.PerfectTasks()),
		IncompleteTasks: toReviewTasks(result.IncompleteTasks()),
	}
}

func toReviewTasks(details []domain.TaskDetail) []reviewTaskResponse {
	tasks := make([]reviewTaskResponse, 0, len(details))
	for _, d := range details {
		missing := make([]string, 0, len(d.MissingDates))
		for _, m := range d.MissingDates {
			missing = append(missing, domain.FormatDate(m))
		}

		tasks = append(tasks, reviewTaskResponse{
			Task:         d.Task,
			Expected:     d.Expected,
			Completed:    d.Completed,
			Percentage:   d.Percentage(),
			Perfect:      d.Perfect(),
			MissingDates: missing,
		})
	}
	return tasks
}
