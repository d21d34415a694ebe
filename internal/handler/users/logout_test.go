// File: internal/handler/users/logout_test.go
package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-api/internal/database"
	"blog-api/internal/middleware"
	"blog-api/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newLogoutCtx(e *echo.Echo, cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/users/logout", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogoutHandler(t *testing.T) {
	e := newEcho()

	t.Run("no claims", func(t *testing.T) {
		ctx, rec := newLogoutCtx(e, "tok")
		require.NoError(t, LogoutHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("delete failed")
		}}
		ctx, rec := newLogoutCtx(e, "tok")
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 1})
		require.NoError(t, LogoutHandler(db)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("no cookie still succeeds", func(t *testing.T) {
		// 沒有 refresh cookie 就沒有可撤銷的紀錄，直接清 cookie 回成功
		ctx, rec := newLogoutCtx(e, "")
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 1})
		require.NoError(t, LogoutHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"success\":true")
	})

	t.Run("idempotent revoke", func(t *testing.T) {
		deletes := 0
		db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			deletes++
			require.Equal(t, 1, args[0])
			require.Equal(t, "tok", args[1])
			if deletes == 1 {
				return pgconn.NewCommandTag("DELETE 1"), nil
			}
			// 第二次登出已無紀錄，仍回成功
			return pgconn.NewCommandTag("DELETE 0"), nil
		}}

		for i := 0; i < 2; i++ {
			ctx, rec := newLogoutCtx(e, "tok")
			ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 1})
			require.NoError(t, LogoutHandler(db)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)

			ck := findCookie(rec, RefreshCookieName)
			require.NotNil(t, ck)
			require.Empty(t, ck.Value)
			require.Equal(t, -1, ck.MaxAge)
		}
		require.Equal(t, 2, deletes)
	})
}
