// File: internal/handler/comments/update_comment.go
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

// UpdateCommentHandler 更新留言內容，僅留言者本人或管理員可操作
// @Summary     更新留言
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       id path int true "文章 ID"
// @Param       commentId path int true "留言 ID"
// @Param       body body dto.UpdateCommentRequest true "留言內容"
// @Success     200 {object} dto.CommentResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/{id}/comments/{commentId} [patch]
func UpdateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		commentID, err := strconv.Atoi(c.Param("commentId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid comment id"})
		}

		var req dto.UpdateCommentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
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

		cm.Text = req.Text
		if err := store.UpdateComment(c.Request().Context(), db, cm); err != nil {
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
