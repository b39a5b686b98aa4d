package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// CommentHandler handles comment submission (members only).
type CommentHandler struct {
	orchids ports.OrchidService
}

func NewCommentHandler(orchids ports.OrchidService) *CommentHandler {
	return &CommentHandler{orchids: orchids}
}

// Post appends a comment to an orchid. Each member gets at most one comment
// per orchid; a second attempt is rejected with 400.
//
// @Summary      Comment on an orchid
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orchidId  path      string          true  "Orchid id"
// @Param        body      body      commentRequest  true  "Comment"
// @Success      201       {object}  envelope
// @Failure      400       {object}  envelope
// @Failure      404       {object}  envelope
// @Failure      422       {object}  envelope
// @Router       /comment/{orchidId} [post]
func (h *CommentHandler) Post(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.orchids.AddComment(c.Request().Context(), c.Param("orchidId"), claims.UserID, req.Text)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Created", commentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	})
}
