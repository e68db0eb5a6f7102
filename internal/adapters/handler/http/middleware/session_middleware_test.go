package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chorechart/internal/core/domain"
	"chorechart/internal/core/services"
)

type mockChildRepo struct {
	mock.Mock
}

func (m *mockChildRepo) Create(ctx context.Context, child *domain.Child) error { return nil }
func (m *mockChildRepo) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Child), args.Error(1)
}
func (m *mockChildRepo) GetByName(ctx context.Context, name string) (*domain.Child, error) {
	return nil, domain.ErrChildNotFound
}
func (m *mockChildRepo) List(ctx context.Context) ([]*domain.Child, error)     { return nil, nil }
func (m *mockChildRepo) Update(ctx context.Context, child *domain.Child) error { return nil }
func (m *mockChildRepo) Delete(ctx context.Context, id string) error           { return nil }

func setupSessionRouter(sessions *services.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SessionMiddleware(sessions))
	r.GET("/whoami", func(c *gin.Context) {
		childID, _ := GetChildID(c)
		c.JSON(http.StatusOK, gin.H{"child_id": childID})
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	repo := new(mockChildRepo)
	child, err := domain.NewChild("Eddie", domain.ThemeDefault)
	require.NoError(t, err)
	repo.On("GetByID", mock.Anything, child.ID).Return(child, nil)

	sessions := services.NewSessionService("test-secret", "chorechart", time.Hour, repo)

	t.Run("Success: Cookie token resolves the child", func(t *testing.T) {
		r := setupSessionRouter(sessions)

		token, err := sessions.IssueToken(child.ID)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), child.ID)
	})

	t.Run("Success: Bearer token works without a cookie", func(t *testing.T) {
		r := setupSessionRouter(sessions)

		token, err := sessions.IssueToken(child.ID)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), child.ID)
	})

	t.Run("Fail: No cookie and no header is 401", func(t *testing.T) {
		r := setupSessionRouter(sessions)

		req, _ := http.NewRequest("GET", "/whoami", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no child selected")
	})

	t.Run("Fail: Malformed authorization header is 401", func(t *testing.T) {
		r := setupSessionRouter(sessions)

		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "garbage")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Token signed with another key is rejected", func(t *testing.T) {
		r := setupSessionRouter(sessions)

		other := services.NewSessionService("other-secret", "chorechart", time.Hour, repo)
		token, err := other.IssueToken(child.ID)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: Stale token for a deleted child is rejected", func(t *testing.T) {
		deletedRepo := new(mockChildRepo)
		deletedRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrChildNotFound)
		staleSessions := services.NewSessionService("test-secret", "chorechart", time.Hour, deletedRepo)

		token, err := staleSessions.IssueToken("gone-child")
		require.NoError(t, err)

		r := setupSessionRouter(staleSessions)

		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
