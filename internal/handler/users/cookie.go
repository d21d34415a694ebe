// File: internal/handler/users/cookie.go
package users

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RefreshCookieName 更新令牌 cookie 名稱
const RefreshCookieName = "refresh_token"

// refreshCookiePath 限縮 cookie 只送往 session 相關端點
const refreshCookiePath = "/api/users"

// setRefreshCookie cookie 效期與 refresh token 本身一致
func setRefreshCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
