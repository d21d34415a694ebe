// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 依字母序回傳所有使用者名稱
// @Summary     使用者列表
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UsersIndexResponse
// @Failure     503 {object} dto.HTTPError
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		names, err := store.ListUsernames(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}
		return c.JSON(http.StatusOK, dto.UsersIndexResponse{Users: names})
	}
}
