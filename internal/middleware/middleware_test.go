package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-api/internal/model"
	"blog-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newAuthCtx(e *echo.Echo, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	t.Setenv("ACCESS_TOKEN_SECRET", "s")

	t.Run("missing header", func(t *testing.T) {
		ctx, _ := newAuthCtx(e, "")
		err := RequireAuth(okNext)(ctx)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		ctx, _ := newAuthCtx(e, "Token abc")
		err := RequireAuth(okNext)(ctx)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx, _ := newAuthCtx(e, "Bearer not-a-jwt")
		err := RequireAuth(okNext)(ctx)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("valid token sets claims", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 7, IsAdmin: true}, time.Minute)
		require.NoError(t, err)

		ctx, rec := newAuthCtx(e, "Bearer "+tok)
		require.NoError(t, RequireAuth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.AccessClaims)
			require.Equal(t, 7, claims.UserID)
			require.True(t, claims.IsAdmin)
			return c.NoContent(http.StatusOK)
		})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bearer is case insensitive", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 1}, time.Minute)
		require.NoError(t, err)
		ctx, rec := newAuthCtx(e, "bearer "+tok)
		require.NoError(t, RequireAuth(okNext)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	t.Setenv("ACCESS_TOKEN_SECRET", "s")

	t.Run("non-admin forbidden", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 1}, time.Minute)
		require.NoError(t, err)
		ctx, _ := newAuthCtx(e, "Bearer "+tok)
		err = RequireAdmin(okNext)(ctx)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 1, IsAdmin: true}, time.Minute)
		require.NoError(t, err)
		ctx, rec := newAuthCtx(e, "Bearer "+tok)
		require.NoError(t, RequireAdmin(okNext)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
