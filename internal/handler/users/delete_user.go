// File: internal/handler/users/delete_user.go
package users

import (
	"net/http"
	"strconv"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 刪除指定使用者（管理員限定）
// 連帶清除其 refresh token、文章與留言（資料庫 CASCADE）
// @Summary     刪除使用者
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		if err := store.DeleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
	}
}
