package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// PublicHandler serves the unauthenticated catalog surface.
type PublicHandler struct {
	orchids ports.OrchidService
}

func NewPublicHandler(orchids ports.OrchidService) *PublicHandler {
	return &PublicHandler{orchids: orchids}
}

// List returns orchid summaries for browsing.
//
// @Summary      Browse the catalog
// @Tags         public
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /public/ [get]
func (h *PublicHandler) List(c echo.Context) error {
	summaries, err := h.orchids.PublicList(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toOrchidSummaryResponses(summaries))
}

// Search matches the slugified query as a substring of orchid slugs. Not a
// ranking engine.
//
// @Summary      Search the catalog
// @Tags         public
// @Produce      json
// @Param        q  query     string  true  "Search text"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /public/search [get]
func (h *PublicHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search query is required")
	}

	summaries, err := h.orchids.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toOrchidSummaryResponses(summaries))
}

// GetBySlug returns the full public view, comments and author usernames
// included.
//
// @Summary      Get an orchid by slug
// @Tags         public
// @Produce      json
// @Param        slug  path      string  true  "Orchid slug"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /public/{slug} [get]
func (h *PublicHandler) GetBySlug(c echo.Context) error {
	detail, err := h.orchids.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toOrchidDetailResponse(detail))
}
