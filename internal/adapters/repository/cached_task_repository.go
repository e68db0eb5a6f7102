package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chorechart/internal/core/domain"
)

var _ domain.TaskRepository = (*CachedTaskRepository)(nil)

// CachedTaskRepository caches the active task list per child, which is the
// read path hit by both the day view and the weekly review.
type CachedTaskRepository struct {
	next  domain.TaskRepository
	cache *redis.Client
}

func NewCachedTaskRepository(next domain.TaskRepository, cache *redis.Client) *CachedTaskRepository {
	return &CachedTaskRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedTaskRepository) cacheKey(childID string) string {
	return fmt.Sprintf("tasks:active:%s", childID)
}

func (r *CachedTaskRepository) invalidate(ctx context.Context, childID string) {
	if err := r.cache.Del(ctx, r.cacheKey(childID)).Err(); err != nil {
		zap.L().Warn("Cache invalidation failed", zap.String("child_id", childID), zap.Error(err))
	}
}

func (r *CachedTaskRepository) ListActiveByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	key := r.cacheKey(childID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var tasks []*domain.Task
		if err := json.Unmarshal([]byte(val), &tasks); err == nil {
			return tasks, nil
		}

		zap.L().Warn("Corrupted cache entry, cleaning up key", zap.String("key", key))
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		zap.L().Warn("Cache read error", zap.Error(err))
	}

	tasks, err := r.next.ListActiveByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tasks); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			zap.L().Warn("Cache write error", zap.Error(setErr))
		}
	}

	return tasks, nil
}

func (r *CachedTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedTaskRepository) ListByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	return r.next.ListByChildID(ctx, childID)
}

func (r *CachedTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.next.Create(ctx, task); err != nil {
		return err
	}
	r.invalidate(ctx, task.ChildID)
	return nil
}

func (r *CachedTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.next.Update(ctx, task); err != nil {
		return err
	}
	r.invalidate(ctx, task.ChildID)
	return nil
}

func (r *CachedTaskRepository) Delete(ctx context.Context, id string) error {
	task, err := r.next.GetByID(ctx, id)
	if err == nil && task != nil {
		defer r.invalidate(ctx, task.ChildID)
	}

	return r.next.Delete(ctx, id)
}
