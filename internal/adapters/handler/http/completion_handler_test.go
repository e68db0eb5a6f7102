package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	adapterHTTP "chorechart/internal/adapters/handler/http"
	"chorechart/internal/core/domain"
	"chorechart/internal/core/services"
	"chorechart/internal/core/workers"
)

func setupCompletionRouter() (*gin.Engine, *MockTaskRepo, *MockCompletionRepo) {
	gin.SetMode(gin.TestMode)

	childRepo := new(MockChildRepo)
	taskRepo := new(MockTaskRepo)
	completionRepo := new(MockCompletionRepo)

	taskSvc := services.NewTaskService(taskRepo, childRepo, completionRepo, workers.NewPositionWorker(nil))
	svc := services.NewCompletionService(completionRepo, taskRepo)
	handler := adapterHTTP.NewCompletionHandler(svc, taskSvc, time.UTC)

	r := gin.New()
	r.Use(childSessionStub())
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	return r, taskRepo, completionRepo
}

func TestCompletionHandler_MarkComplete(t *testing.T) {
	t.Run("Success: Returns 200 and records the completion", func(t *testing.T) {
		r, taskRepo, completionRepo := setupCompletionRouter()
		task := testTask("child-1", "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil)

		taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
		completionRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.TaskCompletion) bool {
			return c.TaskID == task.ID && domain.FormatDate(c.CompletedOn) == "2026-08-03"
		})).Return(nil)

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/"+task.ID+"/completion?date=2026-08-03", nil)
		req.Header.Set("X-Child-ID", "child-1")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"done":true`)
		completionRepo.AssertExpectations(t)
	})

	t.Run("Edge: Marking twice is still a success", func(t *testing.T) {
		r, taskRepo, completionRepo := setupCompletionRouter()
		task := testTask("child-1", "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil)

		taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
		completionRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrCompletionExists)

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/"+task.ID+"/completion?date=2026-08-03", nil)
		req.Header.Set("X-Child-ID", "child-1")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Fail: Another child's task reads as not found", func(t *testing.T) {
		r, taskRepo, _ := setupCompletionRouter()
		task := testTask("child-1", "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil)

		taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/"+task.ID+"/completion", nil)
		req.Header.Set("X-Child-ID", "sibling-2")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Fail: Returns 401 without a session", func(t *testing.T) {
		r, _, _ := setupCompletionRouter()

		req, _ := http.NewRequest("PUT", "/api/v1/tasks/task-1/completion", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCompletionHandler_MarkIncomplete(t *testing.T) {
	t.Run("Success: Returns 200 and removes the completion", func(t *testing.T) {
		r, taskRepo, completionRepo := setupCompletionRouter()
		task := testTask("child-1", "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil)

		taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
		completionRepo.On("Delete", mock.Anything, task.ID, domain.NewDate(2026, time.August, 3)).Return(nil)

		req, _ := http.NewRequest("DELETE", "/api/v1/tasks/"+task.ID+"/completion?date=2026-08-03", nil)
		req.Header.Set("X-Child-ID", "child-1")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"done":false`)
	})

	t.Run("Edge: Unmarking a never-marked day is a no-op", func(t *testing.T) {
		r, taskRepo, completionRepo := setupCompletionRouter()
		task := testTask("child-1", "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil)

		taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
		completionRepo.On("Delete", mock.Anything, task.ID, mock.Anything).Return(domain.ErrCompletionNotFound)

		req, _ := http.NewRequest("DELETE", "/api/v1/tasks/"+task.ID+"/completion?date=2026-08-03", nil)
		req.Header.Set("X-Child-ID", "child-1")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
