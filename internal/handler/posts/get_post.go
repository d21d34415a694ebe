// File: internal/handler/posts/get_post.go
package posts

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

// GetPostHandler 取得單篇文章
// @Summary     取得文章
// @Tags        posts
// @Produce     json
// @Param       id path int true "文章 ID"
// @Success     200 {object} dto.PostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /posts/{id} [get]
func GetPostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		post, err := store.GetPostByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		return c.JSON(http.StatusOK, dto.PostResponse{
			ID:        post.ID,
			Title:     post.Title,
			Text:      post.Text,
			AuthorID:  post.AuthorID,
			Published: post.Published,
			CreatedAt: post.CreatedAt,
		})
	}
}
