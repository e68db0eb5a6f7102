package main

import (
	"context"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"chorechart/internal/adapters/repository"
	"chorechart/internal/config"
	"chorechart/internal/core/domain"
)

type seedTask struct {
	name      string
	timeOfDay string
	frequency string
	weekdays  []int
}

var seedChildren = []struct {
	name  string
	theme string
	tasks []seedTask
}{
	{
		name:  "Eddie",
		theme: domain.ThemeNeoBrutalism,
		tasks: []seedTask{
			{"Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil},
			{"Brush teeth", domain.TimeOfDayMorning, domain.FreqDaily, nil},
			{"Take out trash", domain.TimeOfDayAfternoon, domain.FreqSpecificDays, []int{1, 3, 5}},
			{"Do homework", domain.TimeOfDayAfternoon, domain.FreqSpecificDays, []int{1, 2, 3, 4, 5}},
			{"Clean room", domain.TimeOfDayAfternoon, domain.FreqWeekend, nil},
			{"Set table", domain.TimeOfDayEvening, domain.FreqDaily, nil},
		},
	},
	{
		name:  "Audrey",
		theme: domain.ThemeCandy,
		tasks: []seedTask{
			{"Make bed", domain.TimeOfDayMorning, domain.FreqDaily, nil},
			{"Feed cat", domain.TimeOfDayMorning, domain.FreqDaily, nil},
			{"Practice piano", domain.TimeOfDayAfternoon, domain.FreqSpecificDays, []int{1, 2, 3, 4, 5}},
			{"Clear dishes", domain.TimeOfDayEvening, domain.FreqDaily, nil},
		},
	},
}

// Seeds the demo household. Idempotent: existing children and tasks are
// found by name, never duplicated.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.LoadConfig()
	ctx := context.Background()

	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	db.SetConnMaxLifetime(1 * time.Minute)

	if err := repository.RunMigrations(ctx, db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	childRepo := repository.NewPostgresChildRepository(db)
	taskRepo := repository.NewPostgresTaskRepository(db)

	for _, sc := range seedChildren {
		child, err := findOrCreateChild(ctx, childRepo, sc.name, sc.theme)
		if err != nil {
			logger.Fatal("Failed to seed child", zap.String("name", sc.name), zap.Error(err))
		}

		existing, err := taskRepo.ListByChildID(ctx, child.ID)
		if err != nil {
			logger.Fatal("Failed to list tasks", zap.String("child", sc.name), zap.Error(err))
		}

		byName := make(map[string]bool, len(existing))
		for _, t := range existing {
			byName[t.Name] = true
		}

		position := 0
		for _, st := range sc.tasks {
			position += 10
			if byName[st.name] {
				continue
			}

			task, err := domain.NewTask(child.ID, st.name, st.timeOfDay, st.frequency, st.weekdays, position)
			if err != nil {
				logger.Fatal("Failed to build task", zap.String("name", st.name), zap.Error(err))
			}
			if err := taskRepo.Create(ctx, task); err != nil {
				logger.Fatal("Failed to insert task", zap.String("name", st.name), zap.Error(err))
			}

			logger.Info("Seeded task", zap.String("child", sc.name), zap.String("task", st.name))
		}
	}

	logger.Info("Seeding complete")
}

func findOrCreateChild(ctx context.Context, repo *repository.PostgresChildRepository, name, theme string) (*domain.Child, error) {
	child, err := repo.GetByName(ctx, name)
	if err == nil {
		return child, nil
	}
	if !errors.Is(err, domain.ErrChildNotFound) {
		return nil, err
	}

	child, err = domain.NewChild(name, theme)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, child); err != nil {
		return nil, err
	}

	zap.L().Info("Seeded child", zap.String("name", name))
	return child, nil
}
