package services

import (
	"context"

	"chorechart/internal/core/domain"
)

type ChildService struct {
	repo domain.ChildRepository
}

func NewChildService(repo domain.ChildRepository) *ChildService {
	return &ChildService{
		repo: repo,
	}
}

type CreateChildInput struct {
	Name  string
	Theme string
}

type UpdateChildInput struct {
	ID    string
	Name  string
	Theme string
}

func (s *ChildService) Create(ctx context.Context, input CreateChildInput) (*domain.Child, error) {
	child, err := domain.NewChild(input.Name, input.Theme)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, child); err != nil {
		return nil, err
	}

	return child, nil
}

func (s *ChildService) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ChildService) List(ctx context.Context) ([]*domain.Child, error) {
	return s.repo.List(ctx)
}

func (s *ChildService) Update(ctx context.Context, input UpdateChildInput) (*domain.Child, error) {
	child, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = child.Name
	}

	if err := child.Update(name, input.Theme); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, child); err != nil {
		return nil, err
	}

	return child, nil
}

// Delete removes the child and, through the storage cascade, every task and
// completion that belonged to them.
func (s *ChildService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
