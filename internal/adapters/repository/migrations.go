package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type migration struct {
	name string
	sql  string
}

// Migrations run in order and each one is recorded in schema_migrations,
// so re-running on an existing database is a no-op.
var migrations = []migration{
	{
		name: "001_create_children",
		sql: `
			CREATE TABLE IF NOT EXISTS children (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				theme TEXT NOT NULL DEFAULT 'default',
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			);`,
	},
	{
		name: "002_create_tasks",
		sql: `
			CREATE TABLE IF NOT EXISTS tasks (
				id UUID PRIMARY KEY,
				child_id UUID NOT NULL REFERENCES children(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				time_of_day TEXT NOT NULL DEFAULT 'afternoon',
				frequency TEXT NOT NULL DEFAULT 'daily',
				weekdays JSONB NOT NULL DEFAULT '[]',
				active BOOLEAN NOT NULL DEFAULT TRUE,
				position INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_tasks_child_id ON tasks(child_id);`,
	},
	{
		name: "003_create_task_completions",
		sql: `
			CREATE TABLE IF NOT EXISTS task_completions (
				id UUID PRIMARY KEY,
				task_id UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
				completed_on DATE NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				UNIQUE (task_id, completed_on)
			);
			CREATE INDEX IF NOT EXISTS idx_task_completions_task_id ON task_completions(task_id);`,
	},
}

// RunMigrations applies any pending schema migrations.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	createTracking := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			executed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`
	if _, err := db.ExecContext(ctx, createTracking); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM schema_migrations WHERE name = $1`, m.name); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.name, err)
		}
		if count > 0 {
			continue
		}

		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", m.name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.name, err)
		}

		zap.L().Info("Migration applied", zap.String("name", m.name))
	}
	return nil
}
