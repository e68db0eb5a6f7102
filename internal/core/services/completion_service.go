package services

import (
	"context"
	"errors"
	"time"

	"chorechart/internal/core/domain"
)

type CompletionService struct {
	repo     domain.CompletionRepository
	taskRepo domain.TaskRepository
}

func NewCompletionService(repo domain.CompletionRepository, taskRepo domain.TaskRepository) *CompletionService {
	return &CompletionService{
		repo:     repo,
		taskRepo: taskRepo,
	}
}

// MarkComplete records a completion for the (task, date) pair. Marking an
// already-completed day succeeds without creating a second row, which is
// what keeps the presentation layer's toggle free of upsert races: the
// storage uniqueness constraint decides, and a loss there is still success.
func (s *CompletionService) MarkComplete(ctx context.Context, taskID string, date time.Time) error {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return err
	}

	completion := domain.NewTaskCompletion(taskID, date)
	if err := completion.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, completion); err != nil {
		if errors.Is(err, domain.ErrCompletionExists) {
			return nil
		}
		return err
	}

	return nil
}

// MarkIncomplete removes the completion for the (task, date) pair; a missing
// row is a no-op, not an error.
func (s *CompletionService) MarkIncomplete(ctx context.Context, taskID string, date time.Time) error {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, taskID, domain.DateOf(date)); err != nil {
		if errors.Is(err, domain.ErrCompletionNotFound) {
			return nil
		}
		return err
	}

	return nil
}

// IsComplete reports whether a completion exists for the (task, date) pair.
func (s *CompletionService) IsComplete(ctx context.Context, taskID string, date time.Time) (bool, error) {
	_, err := s.repo.GetByTaskAndDate(ctx, taskID, domain.DateOf(date))
	if err != nil {
		if errors.Is(err, domain.ErrCompletionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
