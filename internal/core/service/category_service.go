package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/orchidarium/catalog-api/internal/core/domain"
	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// CategoryService implements category management.
type CategoryService struct {
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAllActive(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	created, err := s.categories.Create(ctx, &domain.Category{
		Name:   name,
		Status: domain.CategoryActive,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*domain.Category, error) {
	return s.categories.UpdateName(ctx, id, name)
}

// Delete soft-deletes the category. Orchids referencing it keep a resolvable
// reference; only the listing hides it.
func (s *CategoryService) Delete(ctx context.Context, id string) (*domain.Category, error) {
	deleted, err := s.categories.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", id).Msg("category soft-deleted")
	return deleted, nil
}
