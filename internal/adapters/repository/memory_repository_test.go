package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chorechart/internal/core/domain"
)

func setupMemoryRepos(t *testing.T) (*InMemoryChildRepository, *InMemoryTaskRepository, *InMemoryCompletionRepository) {
	t.Helper()
	taskRepo := NewInMemoryTaskRepository()
	childRepo := NewInMemoryChildRepository(taskRepo)
	completionRepo := NewInMemoryCompletionRepository(taskRepo)
	return childRepo, taskRepo, completionRepo
}

func TestInMemoryCascadeDelete(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*InMemoryChildRepository, *InMemoryTaskRepository, *InMemoryCompletionRepository, *domain.Child, *domain.Task) {
		t.Helper()
		childRepo, taskRepo, completionRepo := setupMemoryRepos(t)

		child, err := domain.NewChild("Eddie", domain.ThemeNeoBrutalism)
		require.NoError(t, err)
		require.NoError(t, childRepo.Create(ctx, child))

		task, err := domain.NewTask(child.ID, "Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil, 10)
		require.NoError(t, err)
		require.NoError(t, taskRepo.Create(ctx, task))

		completion := domain.NewTaskCompletion(task.ID, domain.NewDate(2026, time.August, 3))
		require.NoError(t, completionRepo.Create(ctx, completion))

		return childRepo, taskRepo, completionRepo, child, task
	}

	t.Run("Success: Deleting Child Removes Tasks And Completions", func(t *testing.T) {
		childRepo, taskRepo, completionRepo, child, task := seed(t)

		require.NoError(t, childRepo.Delete(ctx, child.ID))

		_, err := taskRepo.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)

		tasks, err := taskRepo.ListByChildID(ctx, child.ID)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		_, err = completionRepo.GetByTaskAndDate(ctx, task.ID, domain.NewDate(2026, time.August, 3))
		assert.ErrorIs(t, err, domain.ErrCompletionNotFound)
	})

	t.Run("Success: Deleting Task Removes Its Completions", func(t *testing.T) {
		_, taskRepo, completionRepo, _, task := seed(t)

		require.NoError(t, taskRepo.Delete(ctx, task.ID))

		_, err := completionRepo.GetByTaskAndDate(ctx, task.ID, domain.NewDate(2026, time.August, 3))
		assert.ErrorIs(t, err, domain.ErrCompletionNotFound)
	})

	t.Run("Edge: Sibling Data Untouched", func(t *testing.T) {
		childRepo, taskRepo, completionRepo, child, _ := seed(t)

		sibling, err := domain.NewChild("Audrey", domain.ThemeCandy)
		require.NoError(t, err)
		require.NoError(t, childRepo.Create(ctx, sibling))

		siblingTask, err := domain.NewTask(sibling.ID, "Feed cat", domain.TimeOfDayMorning, domain.FreqDaily, nil, 10)
		require.NoError(t, err)
		require.NoError(t, taskRepo.Create(ctx, siblingTask))

		siblingCompletion := domain.NewTaskCompletion(siblingTask.ID, domain.NewDate(2026, time.August, 3))
		require.NoError(t, completionRepo.Create(ctx, siblingCompletion))

		require.NoError(t, childRepo.Delete(ctx, child.ID))

		_, err = taskRepo.GetByID(ctx, siblingTask.ID)
		assert.NoError(t, err)
		_, err = completionRepo.GetByTaskAndDate(ctx, siblingTask.ID, domain.NewDate(2026, time.August, 3))
		assert.NoError(t, err)
	})
}
