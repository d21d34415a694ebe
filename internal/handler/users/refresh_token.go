// File: internal/handler/users/refresh_token.go
package users

import (
	"errors"
	"net/http"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/service"

	"github.com/labstack/echo/v4"
)

// RefreshTokenHandler 以 cookie 中的更新令牌輪替出新的一組令牌
// 舊值在成功當下即失效（單次使用）
// @Summary     輪替令牌
// @Description 驗證 refresh token cookie，簽發新存取令牌並原地輪替 refresh token
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.AuthResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /users/refreshToken [post]
func RefreshTokenHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(RefreshCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
		}

		pair, err := service.Refresh(c.Request().Context(), db, cookie.Value,
			service.AccessTokenTTL(), service.RefreshTokenTTL())
		if err != nil {
			// 驗證失敗與已撤銷不作區分
			if errors.Is(err, service.ErrUnauthorized) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "unauthorized"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		setRefreshCookie(c, pair.RefreshToken, pair.RefreshExpiresAt)
		return c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: pair.AccessToken})
	}
}
