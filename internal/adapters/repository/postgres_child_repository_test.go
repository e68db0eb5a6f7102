package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"chorechart/internal/core/domain"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "chorechart_user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "secret"
	}
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "chorechart_db"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func cleanup(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec("TRUNCATE TABLE task_completions, tasks, children CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func TestPostgresChildRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	repo := NewPostgresChildRepository(db)
	ctx := context.Background()

	child, err := domain.NewChild("Eddie", domain.ThemeDefault)
	require.NoError(t, err)

	t.Run("Create Child", func(t *testing.T) {
		err := repo.Create(ctx, child)
		assert.NoError(t, err)
	})

	t.Run("Create Duplicate Name", func(t *testing.T) {
		dup, err := domain.NewChild("Eddie", domain.ThemeCandy)
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.Equal(t, domain.ErrChildNameTaken, err)
	})

	t.Run("Get By ID", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, child.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Eddie", fetched.Name)
		assert.Equal(t, domain.ThemeDefault, fetched.Theme)
	})

	t.Run("Get By Name", func(t *testing.T) {
		fetched, err := repo.GetByName(ctx, "Eddie")
		assert.NoError(t, err)
		assert.Equal(t, child.ID, fetched.ID)
	})

	t.Run("List Ordered By Name", func(t *testing.T) {
		audrey, err := domain.NewChild("Audrey", domain.ThemeNeoBrutalism)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, audrey))

		list, err := repo.List(ctx)
		assert.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Audrey", list[0].Name)
		assert.Equal(t, "Eddie", list[1].Name)
	})

	t.Run("Update Child", func(t *testing.T) {
		oldUpdatedAt := child.UpdatedAt

		time.Sleep(50 * time.Millisecond)
		require.NoError(t, child.Update("Ed", domain.ThemeCandy))

		err := repo.Update(ctx, child)
		assert.NoError(t, err)

		updated, err := repo.GetByID(ctx, child.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Ed", updated.Name)
		assert.Equal(t, domain.ThemeCandy, updated.Theme)
		assert.True(t, updated.UpdatedAt.After(oldUpdatedAt))
	})

	t.Run("Delete Cascades To Tasks", func(t *testing.T) {
		task, err := domain.NewTask(child.ID, "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil, 10)
		require.NoError(t, err)

		taskRepo := NewPostgresTaskRepository(db)
		require.NoError(t, taskRepo.Create(ctx, task))

		err = repo.Delete(ctx, child.ID)
		assert.NoError(t, err)

		_, err = repo.GetByID(ctx, child.ID)
		assert.Equal(t, domain.ErrChildNotFound, err)

		var count int
		err = db.QueryRow("SELECT count(*) FROM tasks WHERE child_id=$1", child.ID).Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Update/Delete Non-Existent ID", func(t *testing.T) {
		ghost, err := domain.NewChild("Ghost", domain.ThemeDefault)
		require.NoError(t, err)

		err = repo.Update(ctx, ghost)
		assert.Equal(t, domain.ErrChildNotFound, err)

		err = repo.Delete(ctx, ghost.ID)
		assert.Equal(t, domain.ErrChildNotFound, err)
	})
}
