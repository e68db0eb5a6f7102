package workers

import (
	"context"

	"go.uber.org/zap"

	"chorechart/internal/core/domain"
)

// positionStep leaves gaps between neighbours so a caregiver can slot a task
// between two others without a full renumber.
const positionStep = 10

type TaskRepository interface {
	ListByChildID(ctx context.Context, childID string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
}

type ResequenceJob struct {
	ChildID string
}

// PositionWorker renumbers a child's tasks to sparse positions (10, 20, 30…)
// within each time-of-day group after task writes. Relative order is
// preserved; only the numbering is compacted.
type PositionWorker struct {
	taskRepo TaskRepository
	jobs     chan ResequenceJob
}

func NewPositionWorker(taskRepo TaskRepository) *PositionWorker {
	return &PositionWorker{
		taskRepo: taskRepo,
		jobs:     make(chan ResequenceJob, 100),
	}
}

func (w *PositionWorker) Start(ctx context.Context) {
	go func() {
		zap.L().Info("position worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				zap.L().Info("position worker shutting down")
				return
			}
		}
	}()
}

func (w *PositionWorker) Enqueue(childID string) {
	select {
	case w.jobs <- ResequenceJob{ChildID: childID}:
	default:
		zap.L().Warn("position worker queue full, dropping job",
			zap.String("child_id", childID))
	}
}

func (w *PositionWorker) processJob(ctx context.Context, job ResequenceJob) {
	tasks, err := w.taskRepo.ListByChildID(ctx, job.ChildID)
	if err != nil {
		zap.L().Error("position worker failed to list tasks",
			zap.String("child_id", job.ChildID), zap.Error(err))
		return
	}

	for _, task := range resequence(tasks) {
		if err := w.taskRepo.Update(ctx, task); err != nil {
			zap.L().Error("position worker failed to update task",
				zap.String("task_id", task.ID), zap.Error(err))
		}
	}
}

// resequence assigns sparse positions per time-of-day group and returns only
// the tasks whose position actually changed.
func resequence(tasks []*domain.Task) []*domain.Task {
	groups := make(map[string][]*domain.Task)
	for _, task := range tasks {
		groups[task.TimeOfDay] = append(groups[task.TimeOfDay], task)
	}

	var changed []*domain.Task
	for _, group := range groups {
		domain.SortTasks(group)

		for i, task := range group {
			want := (i + 1) * positionStep
			if task.Position == want {
				continue
			}
			if err := task.ChangePosition(want); err != nil {
				continue
			}
			changed = append(changed, task)
		}
	}

	return changed
}
