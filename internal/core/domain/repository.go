package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrChildNotFound      = errors.New("child not found")
	ErrChildNameTaken     = errors.New("child name already taken")
	ErrTaskNotFound       = errors.New("task not found")
	ErrCompletionNotFound = errors.New("task completion not found")
	ErrCompletionExists   = errors.New("task completion already recorded for that date")
)

type ChildRepository interface {
	// Create persists a new child. Returns ErrChildNameTaken when the
	// unique name constraint rejects the insert.
	Create(ctx context.Context, child *Child) error

	GetByID(ctx context.Context, id string) (*Child, error)

	GetByName(ctx context.Context, name string) (*Child, error)

	// List returns all children ordered by name.
	List(ctx context.Context) ([]*Child, error)

	Update(ctx context.Context, child *Child) error

	// Delete removes the child; tasks and completions cascade.
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error

	GetByID(ctx context.Context, id string) (*Task, error)

	// ListByChildID returns every task of the child, active or not,
	// in display order (time of day, position, name).
	ListByChildID(ctx context.Context, childID string) ([]*Task, error)

	// ListActiveByChildID returns only the non-disabled tasks,
	// in display order.
	ListActiveByChildID(ctx context.Context, childID string) ([]*Task, error)

	Update(ctx context.Context, task *Task) error

	Delete(ctx context.Context, id string) error
}

type CompletionRepository interface {
	// Create persists a completion. The storage layer enforces the
	// (task_id, completed_on) uniqueness constraint; a duplicate insert
	// returns ErrCompletionExists.
	Create(ctx context.Context, completion *TaskCompletion) error

	// Delete removes the completion for the (task, date) pair, or returns
	// ErrCompletionNotFound when no row exists.
	Delete(ctx context.Context, taskID string, date time.Time) error

	GetByTaskAndDate(ctx context.Context, taskID string, date time.Time) (*TaskCompletion, error)

	// ListByTaskID returns the task's completions with completed_on in
	// [from, to] inclusive, ascending by date.
	ListByTaskID(ctx context.Context, taskID string, from, to time.Time) ([]*TaskCompletion, error)

	// ListByChildID returns all completions of the child's tasks with
	// completed_on in [from, to] inclusive. One range query feeds a whole
	// weekly review.
	ListByChildID(ctx context.Context, childID string, from, to time.Time) ([]*TaskCompletion, error)
}
