package ports

import (
	"context"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// OrchidRepository defines persistence operations for orchids and their
// embedded comments.
type OrchidRepository interface {
	Create(ctx context.Context, orchid *domain.Orchid) (*domain.Orchid, error)
	FindByID(ctx context.Context, id string) (*domain.Orchid, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Orchid, error)
	FindAll(ctx context.Context) ([]*domain.Orchid, error)
	// SearchBySlug returns orchids whose slug contains fragment.
	SearchBySlug(ctx context.Context, fragment string) ([]*domain.Orchid, error)
	Update(ctx context.Context, orchid *domain.Orchid) (*domain.Orchid, error)
	Delete(ctx context.Context, id string) (*domain.Orchid, error)
	// PushCommentIfFirst appends the comment in a single conditional update
	// that matches only when no existing comment has the same author. It
	// reports whether the append happened, so the one-comment-per-author
	// rule holds even under concurrent writes.
	PushCommentIfFirst(ctx context.Context, orchidID string, comment *domain.Comment) (bool, error)
}
