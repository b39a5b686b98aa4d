package ports

import (
	"context"
	"time"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// OrchidInput carries all data needed to create or replace an orchid.
type OrchidInput struct {
	Name       string
	Image      string
	IsNatural  bool
	Origin     string
	CategoryID string
}

// CategoryRef is the resolved category reference embedded in orchid views.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrchidView is an orchid with its category reference resolved to a name.
type OrchidView struct {
	Orchid   *domain.Orchid
	Category CategoryRef
}

// OrchidSummary is the lightweight public listing item; it intentionally
// omits comments and provenance fields.
type OrchidSummary struct {
	ID       string
	Name     string
	Image    string
	Slug     string
	Category CategoryRef
}

// CommentView is a comment with its author resolved to a username.
type CommentView struct {
	ID             string
	Text           string
	AuthorID       string
	AuthorUsername string
	CreatedAt      time.Time
}

// OrchidDetail is the full public view served by slug lookup.
type OrchidDetail struct {
	ID        string
	Name      string
	Image     string
	IsNatural bool
	Origin    string
	Slug      string
	Category  CategoryRef
	Comments  []CommentView
}

// OrchidService defines catalog operations, both the admin write path and
// the public read surface.
type OrchidService interface {
	List(ctx context.Context) ([]*OrchidView, error)
	Get(ctx context.Context, id string) (*OrchidView, error)
	Create(ctx context.Context, in OrchidInput) (*domain.Orchid, error)
	Update(ctx context.Context, id string, in OrchidInput) (*OrchidView, error)
	Delete(ctx context.Context, id string) (*OrchidView, error)

	PublicList(ctx context.Context) ([]OrchidSummary, error)
	GetBySlug(ctx context.Context, slug string) (*OrchidDetail, error)
	Search(ctx context.Context, query string) ([]OrchidSummary, error)

	// AddComment appends a comment for author, enforcing at most one
	// comment per author per orchid.
	AddComment(ctx context.Context, orchidID, authorID, text string) (*domain.Comment, error)
}
