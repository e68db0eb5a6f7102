package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chorechart/internal/core/domain"
	"chorechart/internal/core/workers"
)

type TaskService struct {
	repo           domain.TaskRepository
	childRepo      domain.ChildRepository
	completionRepo domain.CompletionRepository
	worker         *workers.PositionWorker
}

func NewTaskService(repo domain.TaskRepository, childRepo domain.ChildRepository, completionRepo domain.CompletionRepository, worker *workers.PositionWorker) *TaskService {
	return &TaskService{
		repo:           repo,
		childRepo:      childRepo,
		completionRepo: completionRepo,
		worker:         worker,
	}
}

type CreateTaskInput struct {
	ChildID   string
	Name      string
	TimeOfDay string
	Frequency string
	Weekdays  []int
	Position  int
}

type UpdateTaskInput struct {
	ID        string
	Name      string
	TimeOfDay string
	Frequency string
	Weekdays  []int
	Active    *bool
	Position  *int
}

// TaskStatus pairs a task due on a given day with whether a completion was
// recorded for that day.
type TaskStatus struct {
	Task *domain.Task
	Done bool
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if _, err := s.childRepo.GetByID(ctx, input.ChildID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(input.ChildID, input.Name, input.TimeOfDay, input.Frequency, input.Weekdays, input.Position)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.worker.Enqueue(task.ChildID)

	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByChildID returns every task of the child, including deactivated ones,
// for the caregiver management view.
func (s *TaskService) ListByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	if _, err := s.childRepo.GetByID(ctx, childID); err != nil {
		return nil, err
	}
	return s.repo.ListByChildID(ctx, childID)
}

// ListForDay returns the child's active tasks due on the given date, in
// display order, each paired with its completion status for that date.
func (s *TaskService) ListForDay(ctx context.Context, childID string, date time.Time) ([]TaskStatus, error) {
	if _, err := s.childRepo.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListActiveByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	date = domain.DateOf(date)

	completions, err := s.completionRepo.ListByChildID(ctx, childID, date, date)
	if err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[c.TaskID] = true
	}

	statuses := make([]TaskStatus, 0, len(tasks))
	for _, task := range tasks {
		if !task.ValidFrequency() {
			zap.L().Warn("task has unrecognized frequency, treating as not due",
				zap.String("task_id", task.ID),
				zap.String("frequency", task.Frequency))
			continue
		}
		if !task.DueOn(date) {
			continue
		}
		statuses = append(statuses, TaskStatus{Task: task, Done: done[task.ID]})
	}

	return statuses, nil
}

func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	name := mergeString(input.Name, task.Name)
	timeOfDay := mergeString(input.TimeOfDay, task.TimeOfDay)
	frequency := mergeString(input.Frequency, task.Frequency)

	weekdays := task.Weekdays
	if input.Weekdays != nil {
		weekdays = input.Weekdays
	}

	if err := task.Update(name, timeOfDay, frequency, weekdays); err != nil {
		return nil, err
	}

	if input.Position != nil {
		if err := task.ChangePosition(*input.Position); err != nil {
			return nil, err
		}
	}

	if input.Active != nil {
		if *input.Active {
			task.Activate()
		} else {
			task.Deactivate()
		}
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.worker.Enqueue(task.ChildID)

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.worker.Enqueue(task.ChildID)

	return nil
}
