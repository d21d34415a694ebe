// File: internal/handler/users/login_test.go
package users

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"blog-api/internal/database"
	"blog-api/internal/model"
	"blog-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	e := newEcho()
	setTokenSecrets(t)

	hash, err := service.HashPassword("secret12")
	require.NoError(t, err)
	bob := model.User{ID: 1, Username: "bob", PasswordHash: hash}

	t.Run("bind error", func(t *testing.T) {
		ctx, rec := newJSONCtx(e, "{not json")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("missing password")}
		defer func() { e.Validator = &stubValidator{} }()
		ctx, rec := newJSONCtx(e, `{"username":"bob"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return errRow(pgx.ErrNoRows)
		}}
		ctx, rec := newJSONCtx(e, `{"username":"ghost","password":"secret12"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return userRow(bob)
		}}
		ctx, rec := newJSONCtx(e, `{"username":"bob","password":"wrongpass"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		// 與帳號不存在的回應完全一致
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("store down", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return errRow(errors.New("conn refused"))
		}}
		ctx, rec := newJSONCtx(e, `{"username":"bob","password":"secret12"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		var insertedToken string
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow(bob) },
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				insertedToken = args[2].(string)
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			},
		}
		ctx, rec := newJSONCtx(e, `{"username":"bob","password":"secret12"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
		}
		decodeBody(t, rec, &resp)
		require.True(t, resp.Success)
		claims, err := service.VerifyAccessToken(resp.Token)
		require.NoError(t, err)
		require.Equal(t, 1, claims.UserID)

		// cookie 值即是落地的 refresh token
		ck := findCookie(rec, RefreshCookieName)
		require.NotNil(t, ck)
		require.Equal(t, insertedToken, ck.Value)
		require.True(t, ck.HttpOnly)
		require.True(t, ck.Secure)
	})
}
