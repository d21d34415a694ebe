// File: internal/handler/posts/delete_post.go
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

// DeletePostHandler 刪除文章，僅作者本人或管理員可操作
// 留言隨文章一併刪除（資料庫 CASCADE）
// @Summary     刪除文章
// @Tags        posts
// @Produce     json
// @Param       id path int true "文章 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/{id} [delete]
func DeletePostHandler(db database.DB, cch cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

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

		if post.AuthorID != claims.UserID && !claims.IsAdmin {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "not the author"})
		}

		if err := store.DeletePost(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		invalidateIndex(wp, cch)
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "post deleted"})
	}
}
