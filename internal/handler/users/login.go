// File: internal/handler/users/login.go
package users

import (
	"errors"
	"net/http"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Username/Password 驗證並建立新的裝置 session
// @Summary     登入使用者
// @Description 驗證帳密，回傳存取令牌；refresh token 設定於 http-only cookie
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "帳號與密碼"
// @Success     200 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /users/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		pair, _, err := service.Login(c.Request().Context(), db, req.Username, req.Password,
			service.AccessTokenTTL(), service.RefreshTokenTTL())
		if err != nil {
			// 帳號不存在與密碼錯誤回應一致
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		setRefreshCookie(c, pair.RefreshToken, pair.RefreshExpiresAt)
		return c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: pair.AccessToken})
	}
}
