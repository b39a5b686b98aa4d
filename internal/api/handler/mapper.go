package handler

import (
	"github.com/orchidarium/catalog-api/internal/core/domain"
	"github.com/orchidarium/catalog-api/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toOrchidResponse(v *ports.OrchidView) orchidResponse {
	comments := make([]commentResponse, 0, len(v.Orchid.Comments))
	for _, c := range v.Orchid.Comments {
		comments = append(comments, commentResponse{
			ID:        c.ID,
			Text:      c.Text,
			AuthorID:  c.AuthorID,
			CreatedAt: c.CreatedAt,
		})
	}
	return orchidResponse{
		ID:        v.Orchid.ID,
		Name:      v.Orchid.Name,
		Image:     v.Orchid.Image,
		IsNatural: v.Orchid.IsNatural,
		Origin:    v.Orchid.Origin,
		Slug:      v.Orchid.Slug,
		Category:  categoryRefResponse{ID: v.Category.ID, Name: v.Category.Name},
		Comments:  comments,
	}
}

func toOrchidDetailResponse(d *ports.OrchidDetail) orchidResponse {
	comments := make([]commentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, commentResponse{
			ID:        c.ID,
			Text:      c.Text,
			AuthorID:  c.AuthorID,
			Author:    c.AuthorUsername,
			CreatedAt: c.CreatedAt,
		})
	}
	return orchidResponse{
		ID:        d.ID,
		Name:      d.Name,
		Image:     d.Image,
		IsNatural: d.IsNatural,
		Origin:    d.Origin,
		Slug:      d.Slug,
		Category:  categoryRefResponse{ID: d.Category.ID, Name: d.Category.Name},
		Comments:  comments,
	}
}

func toOrchidSummaryResponses(summaries []ports.OrchidSummary) []orchidSummaryResponse {
	out := make([]orchidSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, orchidSummaryResponse{
			ID:       s.ID,
			Name:     s.Name,
			Image:    s.Image,
			Slug:     s.Slug,
			Category: categoryRefResponse{ID: s.Category.ID, Name: s.Category.Name},
		})
	}
	return out
}
