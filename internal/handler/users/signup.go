// File: internal/handler/users/signup.go
package users

import (
	"errors"
	"net/http"

	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/model"
	"blog-api/internal/service"
	"blog-api/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// pgUniqueViolation 唯一鍵衝突的 SQLSTATE
const pgUniqueViolation = "23505"

// SignupHandler 註冊新使用者並直接建立 session
// @Summary     註冊使用者
// @Description 建立帳號後直接簽發存取令牌，refresh token 走 http-only cookie
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body dto.SignupRequest true "帳號與密碼"
// @Success     200 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     503 {object} dto.HTTPError
// @Router      /users/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		user := &model.User{
			Username:     req.Username,
			PasswordHash: hash,
		}
		if _, err := store.CreateUser(c.Request().Context(), db, user); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "username already taken"})
			}
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		// 註冊即登入：走同一條 session 建立路徑
		pair, _, err := service.Login(c.Request().Context(), db, req.Username, req.Password,
			service.AccessTokenTTL(), service.RefreshTokenTTL())
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		setRefreshCookie(c, pair.RefreshToken, pair.RefreshExpiresAt)
		return c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: pair.AccessToken})
	}
}
