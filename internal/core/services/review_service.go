package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chorechart/internal/core/domain"
)

// ReviewService computes a child's weekly summary: for every active task it
// evaluates the recurrence rule over the 7-day window, diffs due dates
// against recorded completions, and folds the per-task details into totals.
// Pure read-and-compute; nothing is mutated, so concurrent calls are safe.
type ReviewService struct {
	childRepo      domain.ChildRepository
	taskRepo       domain.TaskRepository
	completionRepo domain.CompletionRepository
}

func NewReviewService(childRepo domain.ChildRepository, taskRepo domain.TaskRepository, completionRepo domain.CompletionRepository) *ReviewService {
	return &ReviewService{
		childRepo:      childRepo,
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
	}
}

// Summarize builds the weekly result for the window [weekStart, weekStart+6].
// The anchor is taken as given; callers normalize it to the configured week
// start policy before getting here.
func (s *ReviewService) Summarize(ctx context.Context, childID string, weekStart time.Time) (*domain.WeeklySummaryResult, error) {
	if _, err := s.childRepo.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	window := domain.NewWeekWindow(weekStart)

	tasks, err := s.taskRepo.ListActiveByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	completions, err := s.completionRepo.ListByChildID(ctx, childID, window.Start, window.End())
	if err != nil {
		return nil, err
	}

	// completion dates per task, keyed by date string for set membership
	completedByTask := make(map[string]map[string]bool)
	for _, c := range completions {
		dateKey := domain.FormatDate(c.CompletedOn)
		if completedByTask[c.TaskID] == nil {
			completedByTask[c.TaskID] = make(map[string]bool)
		}
		completedByTask[c.TaskID][dateKey] = true
	}

	details := make([]domain.TaskDetail, 0, len(tasks))

	for _, task := range tasks {
		if !task.ValidFrequency() {
			zap.L().Warn("task has unrecognized frequency, treating as not due",
				zap.String("task_id", task.ID),
				zap.String("frequency", task.Frequency))
		}

		completedDates := completedByTask[task.ID]

		var expectedDates []time.Time
		for _, day := range window.Days() {
			if task.DueOn(day) {
				expectedDates = append(expectedDates, day)
			}
		}

		var missing []time.Time
		for _, day := range expectedDates {
			if !completedDates[domain.FormatDate(day)] {
				missing = append(missing, day)
			}
		}

		details = append(details, domain.TaskDetail{
			Task:         task,
			Expected:     len(expectedDates),
			Completed:    len(completedDates),
			MissingDates: missing,
		})
	}

	return domain.NewWeeklySummaryResult(window, details), nil
}
