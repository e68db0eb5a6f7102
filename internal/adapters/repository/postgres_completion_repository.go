package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"chorechart/internal/core/domain"
)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

func (r *PostgresCompletionRepository) Create(ctx context.Context, completion *domain.TaskCompletion) error {
	query := `
		INSERT INTO task_completions (id, task_id, completed_on, created_at)
		VALUES (:id, :task_id, :completed_on, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, completion)
	if err != nil {
		// unique constraint on (task_id, completed_on)
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return domain.ErrCompletionExists
		case pgForeignKeyViolation:
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) Delete(ctx context.Context, taskID string, date time.Time) error {
	query := `DELETE FROM task_completions WHERE task_id = $1 AND completed_on = $2`

	result, err := r.db.ExecContext(ctx, query, taskID, date)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCompletionNotFound
	}
	return nil
}

func (r *PostgresCompletionRepository) GetByTaskAndDate(ctx context.Context, taskID string, date time.Time) (*domain.TaskCompletion, error) {
	var completion domain.TaskCompletion
	query := `
		SELECT id, task_id, completed_on, created_at
		FROM task_completions
		WHERE task_id = $1 AND completed_on = $2`

	err := r.db.GetContext(ctx, &completion, query, taskID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompletionNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &completion, nil
}

func (r *PostgresCompletionRepository) ListByTaskID(ctx context.Context, taskID string, from, to time.Time) ([]*domain.TaskCompletion, error) {
	completions := []*domain.TaskCompletion{}

	query := `
		SELECT id, task_id, completed_on, created_at
		FROM task_completions
		WHERE task_id = $1
		  AND completed_on >= $2
		  AND completed_on <= $3
		ORDER BY completed_on ASC`

	if err := r.db.SelectContext(ctx, &completions, query, taskID, from, to); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return completions, nil
}

func (r *PostgresCompletionRepository) ListByChildID(ctx context.Context, childID string, from, to time.Time) ([]*domain.TaskCompletion, error) {
	completions := []*domain.TaskCompletion{}

	query := `
		SELECT tc.id, tc.task_id, tc.completed_on, tc.created_at
		FROM task_completions tc
		JOIN tasks t ON t.id = tc.task_id
		WHERE t.child_id = $1
		  AND tc.completed_on >= $2
		  AND tc.completed_on <= $3
		ORDER BY tc.completed_on ASC`

	if err := r.db.SelectContext(ctx, &completions, query, childID, from, to); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return completions, nil
}
