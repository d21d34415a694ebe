// File: internal/handler/posts/update_post.go
package posts

import (
	"errors"
	"net/http"
	"strconv"

	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/service"
	"blog-api/internal/store"
	"blog-api/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdatePostHandler 部分更新文章，僅作者本人或管理員可操作
// @Summary     更新文章
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       id path int true "文章 ID"
// @Param       body body dto.UpdatePostRequest true "欲更新的欄位"
// @Success     200 {object} dto.PostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/{id} [patch]
func UpdatePostHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		var req dto.UpdatePostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		post, err := store.GetPostByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		if post.AuthorID != claims.UserID && !claims.IsAdmin {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "not the author"})
		}

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Text != nil {
			post.Text = *req.Text
		}
		if req.Published != nil {
			post.Published = *req.Published
		}

		if err := store.UpdatePost(c.Request().Context(), db, post); err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		invalidateIndex(wp, cch)
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
