// File: internal/handler/comments/list_comments.go
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

// ListCommentsHandler 回傳某篇文章的所有留言
// @Summary     留言列表
// @Tags        comments
// @Produce     json
// @Param       id path int true "文章 ID"
// @Success     200 {object} dto.CommentsIndexResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /posts/{id}/comments [get]
func ListCommentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		postID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		// 文章必須存在
		if _, err := store.GetPostByID(c.Request().Context(), db, postID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		cms, err := store.ListCommentsByPost(c.Request().Context(), db, postID)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		resp := dto.CommentsIndexResponse{Comments: make([]dto.CommentResponse, 0, len(cms))}
		for _, cm := range cms {
			resp.Comments = append(resp.Comments, dto.CommentResponse{
				ID:        cm.ID,
				PostID:    cm.PostID,
				AuthorID:  cm.AuthorID,
				Text:      cm.Text,
				CreatedAt: cm.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
