package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// CategoryHandler handles category management (admin only).
type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns all categories that are not soft-deleted.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	return respond(c, http.StatusOK, "Success", out)
}

// Get returns a single category by id.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Category id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categories.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toCategoryResponse(category))
}

// Create adds a new category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /categories/ [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categories.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Created", toCategoryResponse(category))
}

// Update renames a category.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category id"
// @Param        body  body      categoryRequest  true  "Category"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categories.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toCategoryResponse(category))
}

// Delete soft-deletes a category; the record stays in the store.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Category id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	category, err := h.categories.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toCategoryResponse(category))
}
