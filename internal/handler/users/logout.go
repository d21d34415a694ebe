// File: internal/handler/users/logout.go
package users

import (
	"net/http"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷目前裝置 session 並清除 cookie
// 沒有符合的紀錄仍回成功（冪等）
// @Summary     登出使用者
// @Description 移除伺服器端 refresh token 紀錄並清除 cookie
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.AuthResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/logout [get]
func LogoutHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.AccessClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		if cookie, err := c.Cookie(RefreshCookieName); err == nil && cookie.Value != "" {
			if err := service.Logout(c.Request().Context(), db, claims.UserID, cookie.Value); err != nil {
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
			}
		}

		clearRefreshCookie(c)
		return c.JSON(http.StatusOK, dto.AuthResponse{Success: true})
	}
}
