package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// OrchidHandler handles catalog management (admin only).
type OrchidHandler struct {
	orchids ports.OrchidService
}

func NewOrchidHandler(orchids ports.OrchidService) *OrchidHandler {
	return &OrchidHandler{orchids: orchids}
}

// List returns all orchids with their category references resolved.
//
// @Summary      List orchids
// @Tags         orchids
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /orchid/ [get]
func (h *OrchidHandler) List(c echo.Context) error {
	views, err := h.orchids.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]orchidResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toOrchidResponse(v))
	}
	return respond(c, http.StatusOK, "Success", out)
}

// Get returns a single orchid by id.
//
// @Summary      Get an orchid
// @Tags         orchids
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Orchid id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /orchid/{id} [get]
func (h *OrchidHandler) Get(c echo.Context) error {
	view, err := h.orchids.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toOrchidResponse(view))
}

// Create adds an orchid. The referenced category must exist; the slug is
// derived from the name plus a random suffix.
//
// @Summary      Create an orchid
// @Tags         orchids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      orchidRequest  true  "Orchid"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /orchid/ [post]
func (h *OrchidHandler) Create(c echo.Context) error {
	var req orchidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	orchid, err := h.orchids.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Created", toOrchidResponse(&ports.OrchidView{
		Orchid:   orchid,
		Category: ports.CategoryRef{ID: orchid.CategoryID},
	}))
}

// Update replaces an orchid's catalog fields. The slug only changes when
// the name does.
//
// @Summary      Update an orchid
// @Tags         orchids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Orchid id"
// @Param        body  body      orchidRequest  true  "Orchid"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /orchid/{id} [put]
func (h *OrchidHandler) Update(c echo.Context) error {
	var req orchidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.orchids.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toOrchidResponse(view))
}

// Delete removes an orchid and its embedded comments.
//
// @Summary      Delete an orchid
// @Tags         orchids
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Orchid id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /orchid/{id} [delete]
func (h *OrchidHandler) Delete(c echo.Context) error {
	view, err := h.orchids.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toOrchidResponse(view))
}
