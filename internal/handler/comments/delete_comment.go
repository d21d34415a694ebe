// File: internal/handler/comments/delete_comment.go
package comments

import (
	"errors"
	"net/http"
	"strconv"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/service"
	"blog-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// DeleteCommentHandler 刪除留言，僅留言者本人或管理員可操作
// @Summary     刪除留言
// @Tags        comments
// @Produce     json
// @Param       id path int true "文章 ID"
// @Param       commentId path int true "留言 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/{id}/comments/{commentId} [delete]
func DeleteCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

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

		if cm.AuthorID != claims.UserID && !claims.IsAdmin {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "not the author"})
		}

		if err := store.DeleteComment(c.Request().Context(), db, commentID); err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted"})
	}
}
