// File: internal/handler/users/refresh_token_test.go
package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-api/internal/database"
	"blog-api/internal/model"
	"blog-api/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newRefreshCtx(e *echo.Echo, cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/users/refreshToken", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRefreshTokenHandler(t *testing.T) {
	e := newEcho()
	setTokenSecrets(t)

	t.Run("missing cookie", func(t *testing.T) {
		ctx, rec := newRefreshCtx(e, "")
		require.NoError(t, RefreshTokenHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		ctx, rec := newRefreshCtx(e, "not-a-jwt")
		require.NoError(t, RefreshTokenHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	tokenID := uuid.New()
	presented, _, err := service.IssueRefreshToken(1, tokenID, time.Hour)
	require.NoError(t, err)
	bob := model.User{ID: 1, Username: "bob"}

	t.Run("already rotated", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow(bob) },
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		ctx, rec := newRefreshCtx(e, presented)
		require.NoError(t, RefreshTokenHandler(db)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow(bob) },
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("update failed")
			},
		}
		ctx, rec := newRefreshCtx(e, presented)
		require.NoError(t, RefreshTokenHandler(db)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("success rotates cookie", func(t *testing.T) {
		var rotatedTo string
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow(bob) },
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				rotatedTo = args[0].(string)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		ctx, rec := newRefreshCtx(e, presented)
		require.NoError(t, RefreshTokenHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		ck := findCookie(rec, RefreshCookieName)
		require.NotNil(t, ck)
		require.NotEqual(t, presented, ck.Value)
		require.Equal(t, rotatedTo, ck.Value)

		// 新 refresh token 沿用同一個 token id
		claims, err := service.VerifyRefreshToken(ck.Value)
		require.NoError(t, err)
		require.Equal(t, tokenID, claims.TokenID)
	})
}
