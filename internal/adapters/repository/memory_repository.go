package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"chorechart/internal/core/domain"
)

type InMemoryChildRepository struct {
	store map[string]*domain.Child
	tasks *InMemoryTaskRepository

	mu sync.RWMutex
}

func NewInMemoryChildRepository(tasks *InMemoryTaskRepository) *InMemoryChildRepository {
	return &InMemoryChildRepository{
		store: make(map[string]*domain.Child),
		tasks: tasks,
	}
}

func (r *InMemoryChildRepository) Create(ctx context.Context, child *domain.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.store {
		if c.Name == child.Name {
			return domain.ErrChildNameTaken
		}
	}

	r.store[child.ID] = child
	return nil
}

func (r *InMemoryChildRepository) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	child, ok := r.store[id]
	if !ok {
		return nil, domain.ErrChildNotFound
	}
	return child, nil
}

func (r *InMemoryChildRepository) GetByName(ctx context.Context, name string) (*domain.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.store {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrChildNotFound
}

func (r *InMemoryChildRepository) List(ctx context.Context) ([]*domain.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	children := []*domain.Child{}
	for _, c := range r.store {
		children = append(children, c)
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})

	return children, nil
}

func (r *InMemoryChildRepository) Update(ctx context.Context, child *domain.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[child.ID]; !ok {
		return domain.ErrChildNotFound
	}

	for _, c := range r.store {
		if c.ID != child.ID && c.Name == child.Name {
			return domain.ErrChildNameTaken
		}
	}

	r.store[child.ID] = child
	return nil
}

// Delete removes the child and cascades to their tasks and completions,
// mirroring the foreign key ON DELETE CASCADE the postgres schema enforces.
func (r *InMemoryChildRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.store[id]; !ok {
		r.mu.Unlock()
		return domain.ErrChildNotFound
	}
	delete(r.store, id)
	r.mu.Unlock()

	if r.tasks != nil {
		r.tasks.deleteByChildID(id)
	}
	return nil
}

type InMemoryTaskRepository struct {
	store map[string]*domain.Task

	// set by NewInMemoryCompletionRepository so task deletes can cascade
	completions *InMemoryCompletionRepository

	mu sync.RWMutex
}

func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		store: make(map[string]*domain.Task),
	}
}

func (r *InMemoryTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[task.ID] = task
	return nil
}

func (r *InMemoryTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.store[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *InMemoryTaskRepository) ListByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range r.store {
		if t.ChildID == childID {
			tasks = append(tasks, t)
		}
	}

	domain.SortTasks(tasks)
	return tasks, nil
}

func (r *InMemoryTaskRepository) ListActiveByChildID(ctx context.Context, childID string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range r.store {
		if t.ChildID == childID && t.Active {
			tasks = append(tasks, t)
		}
	}

	domain.SortTasks(tasks)
	return tasks, nil
}

func (r *InMemoryTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}

	r.store[task.ID] = task
	return nil
}

// Delete removes the task and cascades to its completions.
func (r *InMemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.store[id]; !ok {
		r.mu.Unlock()
		return domain.ErrTaskNotFound
	}
	delete(r.store, id)
	r.mu.Unlock()

	if r.completions != nil {
		r.completions.deleteByTaskID(id)
	}
	return nil
}

func (r *InMemoryTaskRepository) deleteByChildID(childID string) {
	r.mu.Lock()
	var removed []string
	for id, t := range r.store {
		if t.ChildID == childID {
			delete(r.store, id)
			removed = append(removed, id)
		}
	}
	r.mu.Unlock()

	if r.completions == nil {
		return
	}
	for _, id := range removed {
		r.completions.deleteByTaskID(id)
	}
}

// InMemoryCompletionRepository keys completions by (task, date) and resolves
// child-scoped queries through the task repository it is constructed with.
type InMemoryCompletionRepository struct {
	store map[string]*domain.TaskCompletion
	tasks *InMemoryTaskRepository

	mu sync.RWMutex
}

func NewInMemoryCompletionRepository(tasks *InMemoryTaskRepository) *InMemoryCompletionRepository {
	r := &InMemoryCompletionRepository{
		store: make(map[string]*domain.TaskCompletion),
		tasks: tasks,
	}
	if tasks != nil {
		tasks.completions = r
	}
	return r
}

func completionKey(taskID string, date time.Time) string {
	return taskID + "|" + domain.FormatDate(date)
}

func (r *InMemoryCompletionRepository) Create(ctx context.Context, completion *domain.TaskCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := completionKey(completion.TaskID, completion.CompletedOn)
	if _, ok := r.store[key]; ok {
		return domain.ErrCompletionExists
	}

	r.store[key] = completion
	return nil
}

func (r *InMemoryCompletionRepository) Delete(ctx context.Context, taskID string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := completionKey(taskID, date)
	if _, ok := r.store[key]; !ok {
		return domain.ErrCompletionNotFound
	}

	delete(r.store, key)
	return nil
}

func (r *InMemoryCompletionRepository) deleteByTaskID(taskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, c := range r.store {
		if c.TaskID == taskID {
			delete(r.store, key)
		}
	}
}

func (r *InMemoryCompletionRepository) GetByTaskAndDate(ctx context.Context, taskID string, date time.Time) (*domain.TaskCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	completion, ok := r.store[completionKey(taskID, date)]
	if !ok {
		return nil, domain.ErrCompletionNotFound
	}
	return completion, nil
}

func (r *InMemoryCompletionRepository) ListByTaskID(ctx context.Context, taskID string, from, to time.Time) ([]*domain.TaskCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var completions []*domain.TaskCompletion
	for _, c := range r.store {
		if c.TaskID == taskID && inRange(c.CompletedOn, from, to) {
			completions = append(completions, c)
		}
	}

	sortCompletions(completions)
	return completions, nil
}

func (r *InMemoryCompletionRepository) ListByChildID(ctx context.Context, childID string, from, to time.Time) ([]*domain.TaskCompletion, error) {
	tasks, err := r.tasks.ListByChildID(ctx, childID)
	if err != nil {
		return nil, err
	}

	taskIDs := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		taskIDs[t.ID] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var completions []*domain.TaskCompletion
	for _, c := range r.store {
		if taskIDs[c.TaskID] && inRange(c.CompletedOn, from, to) {
			completions = append(completions, c)
		}
	}

	sortCompletions(completions)
	return completions, nil
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

func sortCompletions(completions []*domain.TaskCompletion) {
	sort.Slice(completions, func(i, j int) bool {
		return completions[i].CompletedOn.Before(completions[j].CompletedOn)
	})
}
