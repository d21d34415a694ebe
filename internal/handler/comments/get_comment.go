// File: internal/handler/comments/get_comment.go
package comments

import (
	"errors"
	"net/http"
	"strconv"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetCommentHandler 取得單則留言
// @Summary     取得留言
// @Tags        comments
// @Produce     json
// @Param       id path int true "文章 ID"
// @Param       commentId path int true "留言 ID"
// @Success     200 {object} dto.CommentResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /posts/{id}/comments/{commentId} [get]
func GetCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		commentID, err := strconv.Atoi(c.Param("commentId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid comment id"})
		}

		cm, err := store.GetCommentByID(c.Request().Context(), db, commentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "comment not found"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		return c.JSON(http.StatusOK, dto.CommentResponse{
			ID:        cm.ID,
			PostID:    cm.PostID,
			AuthorID:  cm.AuthorID,
			Text:      cm.Text,
			CreatedAt: cm.CreatedAt,
		})
	}
}
