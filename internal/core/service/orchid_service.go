package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orchidarium/catalog-api/internal/api/metrics"
	"github.com/orchidarium/catalog-api/internal/core/domain"
	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// OrchidService implements the catalog write path, the public read surface,
// and comment submission.
type OrchidService struct {
	orchids    ports.OrchidRepository
	categories ports.CategoryRepository
	users      ports.UserRepository
	log        zerolog.Logger
}

func NewOrchidService(
	orchids ports.OrchidRepository,
	categories ports.CategoryRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *OrchidService {
	return &OrchidService{orchids: orchids, categories: categories, users: users, log: log}
}

func (s *OrchidService) List(ctx context.Context) ([]*ports.OrchidView, error) {
	orchids, err := s.orchids.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	refs, err := s.categoryRefs(ctx, orchids)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.OrchidView, 0, len(orchids))
	for _, o := range orchids {
		views = append(views, &ports.OrchidView{Orchid: o, Category: refs[o.CategoryID]})
	}
	return views, nil
}

func (s *OrchidService) Get(ctx context.Context, id string) (*ports.OrchidView, error) {
	orchid, err := s.orchids.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, orchid), nil
}

// Create validates the category reference before any write, then derives a
// fresh slug from the name.
func (s *OrchidService) Create(ctx context.Context, in ports.OrchidInput) (*domain.Orchid, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.orchids.Create(ctx, &domain.Orchid{
		Name:       in.Name,
		Image:      in.Image,
		IsNatural:  in.IsNatural,
		Origin:     in.Origin,
		Slug:       newSlug(in.Name),
		CategoryID: in.CategoryID,
		Comments:   []domain.Comment{},
	})
	if err != nil {
		return nil, err
	}

	metrics.OrchidsCreatedTotal.Inc()
	s.log.Info().Str("orchid", created.Name).Str("slug", created.Slug).Msg("orchid created")
	return created, nil
}

// Update re-validates the category on every call, even when the reference is
// unchanged. The slug is recomputed with a new suffix only when the name
// changed; a rename therefore abandons the old slug.
func (s *OrchidService) Update(ctx context.Context, id string, in ports.OrchidInput) (*ports.OrchidView, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	current, err := s.orchids.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := current.Slug
	if in.Name != current.Name {
		slug = newSlug(in.Name)
	}

	updated, err := s.orchids.Update(ctx, &domain.Orchid{
		ID:         id,
		Name:       in.Name,
		Image:      in.Image,
		IsNatural:  in.IsNatural,
		Origin:     in.Origin,
		Slug:       slug,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	return s.toView(ctx, updated), nil
}

func (s *OrchidService) Delete(ctx context.Context, id string) (*ports.OrchidView, error) {
	deleted, err := s.orchids.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("orchid_id", id).Msg("orchid deleted")
	return s.toView(ctx, deleted), nil
}

func (s *OrchidService) PublicList(ctx context.Context) ([]ports.OrchidSummary, error) {
	orchids, err := s.orchids.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toSummaries(ctx, orchids)
}

// GetBySlug serves the public detail view, resolving comment authors to
// usernames.
func (s *OrchidService) GetBySlug(ctx context.Context, slug string) (*ports.OrchidDetail, error) {
	orchid, err := s.orchids.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	view := s.toView(ctx, orchid)

	authorIDs := make([]string, 0, len(orchid.Comments))
	for _, c := range orchid.Comments {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	authors, err := s.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	comments := make([]ports.CommentView, 0, len(orchid.Comments))
	for _, c := range orchid.Comments {
		cv := ports.CommentView{
			ID:        c.ID,
			Text:      c.Text,
			AuthorID:  c.AuthorID,
			CreatedAt: c.CreatedAt,
		}
		if author, ok := authors[c.AuthorID]; ok {
			cv.AuthorUsername = author.Username
		}
		comments = append(comments, cv)
	}

	return &ports.OrchidDetail{
		ID:        orchid.ID,
		Name:      orchid.Name,
		Image:     orchid.Image,
		IsNatural: orchid.IsNatural,
		Origin:    orchid.Origin,
		Slug:      orchid.Slug,
		Category:  view.Category,
		Comments:  comments,
	}, nil
}

// Search is a literal substring match over slugs; the query is slugified
// first so it matches the stored form.
func (s *OrchidService) Search(ctx context.Context, query string) ([]ports.OrchidSummary, error) {
	orchids, err := s.orchids.SearchBySlug(ctx, searchSlug(query))
	if err != nil {
		return nil, err
	}
	return s.toSummaries(ctx, orchids)
}

// AddComment appends a comment, enforcing at most one per author per orchid.
// The existence check and the guarded append are separate store calls, but
// the append itself is conditional, so two racing first comments from the
// same author cannot both land.
func (s *OrchidService) AddComment(ctx context.Context, orchidID, authorID, text string) (*domain.Comment, error) {
	if _, err := s.orchids.FindByID(ctx, orchidID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Text:      text,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}

	pushed, err := s.orchids.PushCommentIfFirst(ctx, orchidID, comment)
	if err != nil {
		return nil, err
	}
	if !pushed {
		metrics.CommentsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrCommentLimit
	}

	metrics.CommentsTotal.WithLabelValues("accepted").Inc()
	s.log.Info().Str("orchid_id", orchidID).Str("author_id", authorID).Msg("comment added")
	return comment, nil
}

// categoryRefs resolves the distinct category ids of orchids to name refs.
func (s *OrchidService) categoryRefs(ctx context.Context, orchids []*domain.Orchid) (map[string]ports.CategoryRef, error) {
	ids := make([]string, 0, len(orchids))
	seen := make(map[string]struct{}, len(orchids))
	for _, o := range orchids {
		if _, ok := seen[o.CategoryID]; ok {
			continue
		}
		seen[o.CategoryID] = struct{}{}
		ids = append(ids, o.CategoryID)
	}

	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]ports.CategoryRef, len(categories))
	for id, c := range categories {
		refs[id] = ports.CategoryRef{ID: c.ID, Name: c.Name}
	}
	return refs, nil
}

// toView resolves a single orchid's category; resolution failures degrade to
// a bare id reference rather than failing the read.
func (s *OrchidService) toView(ctx context.Context, orchid *domain.Orchid) *ports.OrchidView {
	ref := ports.CategoryRef{ID: orchid.CategoryID}
	if category, err := s.categories.FindByID(ctx, orchid.CategoryID); err == nil {
		ref.Name = category.Name
	}
	return &ports.OrchidView{Orchid: orchid, Category: ref}
}

func (s *OrchidService) toSummaries(ctx context.Context, orchids []*domain.Orchid) ([]ports.OrchidSummary, error) {
	refs, err := s.categoryRefs(ctx, orchids)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.OrchidSummary, 0, len(orchids))
	for _, o := range orchids {
		summaries = append(summaries, ports.OrchidSummary{
			ID:       o.ID,
			Name:     o.Name,
			Image:    o.Image,
			Slug:     o.Slug,
			Category: refs[o.CategoryID],
		})
	}
	return summaries, nil
}
