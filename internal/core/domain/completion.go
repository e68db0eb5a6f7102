package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCompletion = errors.New("invalid task completion data")

// TaskCompletion records that a task was done on a specific calendar date.
// CompletedOn is a pure date (midnight UTC), never an instant.
type TaskCompletion struct {
	ID          string    `json:"id" db:"id"`
	TaskID      string    `json:"task_id" db:"task_id"`
	CompletedOn time.Time `json:"completed_on" db:"completed_on"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func NewTaskCompletion(taskID string, date time.Time) *TaskCompletion {
	return &TaskCompletion{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		CompletedOn: DateOf(date),
		CreatedAt:   time.Now().UTC(),
	}
}

func (c *TaskCompletion) Validate() error {
	if strings.TrimSpace(c.TaskID) == "" {
		return ErrInvalidCompletion
	}
	if c.CompletedOn.IsZero() {
		return ErrInvalidCompletion
	}
	return nil
}
