// File: internal/handler/comments/create_comment.go
package comments

import (
	"errors"
	"net/http"
	"strconv"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/model"
	"blog-api/internal/service"
	"blog-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// CreateCommentHandler 以當前使用者身分在文章下留言
// @Summary     建立留言
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       id path int true "文章 ID"
// @Param       body body dto.CreateCommentRequest true "留言內容"
// @Success     200 {object} dto.CommentResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/{id}/comments/create [post]
func CreateCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		postID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		var req dto.CreateCommentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		if _, err := store.GetPostByID(c.Request().Context(), db, postID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		cm := &model.Comment{
			PostID:   postID,
			AuthorID: claims.UserID,
			Text:     req.Text,
		}
		if _, err := store.CreateComment(c.Request().Context(), db, cm); err != nil {
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
