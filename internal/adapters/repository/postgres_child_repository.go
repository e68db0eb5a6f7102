package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"chorechart/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresChildRepository struct {
	db *sqlx.DB
}

func NewPostgresChildRepository(db *sqlx.DB) *PostgresChildRepository {
	return &PostgresChildRepository{db: db}
}

func (r *PostgresChildRepository) Create(ctx context.Context, child *domain.Child) error {
	query := `
		INSERT INTO children (id, name, theme, created_at, updated_at)
		VALUES (:id, :name, :theme, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, child)
	if err != nil {
		// unique constraint on name
		if pgErrCode(err) == pgUniqueViolation {
			return domain.ErrChildNameTaken
		}
		return fmt.Errorf("failed to insert child: %w", err)
	}
	return nil
}

func (r *PostgresChildRepository) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	var child domain.Child
	query := `SELECT * FROM children WHERE id = $1`

	err := r.db.GetContext(ctx, &child, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChildNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &child, nil
}

func (r *PostgresChildRepository) GetByName(ctx context.Context, name string) (*domain.Child, error) {
	var child domain.Child
	query := `SELECT * FROM children WHERE name = $1`

	err := r.db.GetContext(ctx, &child, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChildNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &child, nil
}

func (r *PostgresChildRepository) List(ctx context.Context) ([]*domain.Child, error) {
	children := []*domain.Child{}
	query := `SELECT * FROM children ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &children, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return children, nil
}

func (r *PostgresChildRepository) Update(ctx context.Context, child *domain.Child) error {
	query := `
		UPDATE children
		SET name = :name, theme = :theme, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, child)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return domain.ErrChildNameTaken
		}
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrChildNotFound
	}
	return nil
}

func (r *PostgresChildRepository) Delete(ctx context.Context, id string) error {
	// tasks and task_completions cascade via foreign keys
	result, err := r.db.ExecContext(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrChildNotFound
	}
	return nil
}
