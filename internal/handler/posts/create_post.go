// File: internal/handler/posts/create_post.go
package posts

import (
	"net/http"

	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/model"
	"blog-api/internal/service"
	"blog-api/internal/store"
	"blog-api/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreatePostHandler 以當前使用者身分建立文章
// @Summary     建立文章
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       body body dto.CreatePostRequest true "標題與內文"
// @Success     200 {object} dto.PostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/create [post]
func CreatePostHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		var req dto.CreatePostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		post := &model.Post{
			Title:     req.Title,
			Text:      req.Text,
			AuthorID:  claims.UserID,
			Published: true,
		}
		if _, err := store.CreatePost(c.Request().Context(), db, post); err != nil {
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
