package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"chorechart/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// taskOrder is the display ordering: time-of-day group, then manual
// position, then name as the final tie-break.
const taskOrder = `
	CASE time_of_day WHEN 'morning' THEN 0 WHEN 'afternoon' THEN 1 ELSE 2 END,
	position ASC,
	name ASC`

const taskColumns = `id, child_id, name, time_of_day, frequency, weekdays, active, position, created_at, updated_at`

type PostgresTaskRepository struct {
	db *sqlx.DB
}

func NewPostgresTaskRepository(db *sqlx.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresTaskRepository) scanRow(row scannable) (*domain.Task, error) {
	var t domain.Task
	var weekdaysJSON []byte

	err := row.Scan(
		&t.ID, &t.ChildID, &t.Name, &t.TimeOfDay, &t.Frequency, &weekdaysJSON,
		&t.Active, &t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(weekdaysJSON) > 0 {
		if err := json.Unmarshal(weekdaysJSON, &t.Weekdays); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weekdays: %w", err)
		}
	}

	return &t, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	weekdaysJSON, err := json.Marshal(t.Weekdays)
	if err != nil {
		return fmt.Errorf("failed to marshal weekdays: %w", err)
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.ChildID, t.Name, t.TimeOfDay, t.Frequency, weekdaysJSON,
		t.Active, t.Position, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	t, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return t, nil
}

func (r *PostgresTaskRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("row scan error: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) ListByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE child_id = $1 ORDER BY ` + taskOrder
	return r.list(ctx, query, childID)
}

func (r *PostgresTaskRepository) ListActiveByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE child_id = $1 AND active ORDER BY ` + taskOrder
	return r.list(ctx, query, childID)
}

func (r *PostgresTaskRepository) Update(ctx context.Context, t *domain.Task) error {
	weekdaysJSON, err := json.Marshal(t.Weekdays)
	if err != nil {
		return fmt.Errorf("failed to marshal weekdays: %w", err)
	}

	query := `
		UPDATE tasks
		SET name = $1, time_of_day = $2, frequency = $3, weekdays = $4,
		    active = $5, position = $6, updated_at = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.TimeOfDay, t.Frequency, weekdaysJSON,
		t.Active, t.Position, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	// completions cascade via the foreign key
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
