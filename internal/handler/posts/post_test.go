// File: internal/handler/posts/post_test.go
package posts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/middleware"
	"blog-api/internal/model"
	"blog-api/internal/service"
	"blog-api/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r *fakeRow) Scan(dest ...any) error { return r.scanFn(dest...) }

func postRow(p model.Post) pgx.Row {
	return &fakeRow{scanFn: func(dest ...any) error {
		*dest[0].(*int) = p.ID
		*dest[1].(*string) = p.Title
		*dest[2].(*string) = p.Text
		*dest[3].(*int) = p.AuthorID
		*dest[4].(*bool) = p.Published
		*dest[5].(*time.Time) = p.CreatedAt
		return nil
	}}
}

func errRow(err error) pgx.Row {
	return &fakeRow{scanFn: func(...any) error { return err }}
}

type fakePostRows struct {
	posts []model.Post
	idx   int
}

func (r *fakePostRows) Close()                                       {}
func (r *fakePostRows) Err() error                                   { return nil }
func (r *fakePostRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakePostRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakePostRows) Next() bool                                   { return r.idx < len(r.posts) }
func (r *fakePostRows) Scan(dest ...any) error {
	err := postRow(r.posts[r.idx]).Scan(dest...)
	r.idx++
	return err
}
func (r *fakePostRows) Values() ([]any, error) { return nil, nil }
func (r *fakePostRows) RawValues() [][]byte    { return nil }
func (r *fakePostRows) Conn() *pgx.Conn        { return nil }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &stubValidator{}
	return e
}

func newPostCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/posts/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

// delRecorder 紀錄非同步失效刪掉的 key
type delRecorder struct {
	mu   sync.Mutex
	keys []string
}

func (d *delRecorder) cacheAndPool() (*cache.FakeCache, worker.Pool) {
	cch := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
		d.mu.Lock()
		d.keys = append(d.keys, keys...)
		d.mu.Unlock()
		return redis.NewIntResult(1, nil)
	}}
	return cch, worker.NewPool(1)
}

func (d *delRecorder) deleted() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keys
}

func TestListPostsHandler(t *testing.T) {
	e := newEcho()

	t.Run("cache hit", func(t *testing.T) {
		cch := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult(`{"posts":[]}`, nil)
		}}
		ctx, rec := newPostCtx(e, http.MethodGet, "", "")
		require.NoError(t, ListPostsHandler(nil, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"posts\":[]")
	})

	t.Run("cache miss store error", func(t *testing.T) {
		cch := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}}
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("query failed")
		}}
		ctx, rec := newPostCtx(e, http.MethodGet, "", "")
		require.NoError(t, ListPostsHandler(db, cch)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("cache miss populates cache", func(t *testing.T) {
		var cachedKey string
		cch := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				cachedKey = key
				require.Equal(t, postsCacheTTL, ttl)
				return redis.NewStatusResult("OK", nil)
			},
		}
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakePostRows{posts: []model.Post{{ID: 1, Title: "Hello", Published: true}}}, nil
		}}
		ctx, rec := newPostCtx(e, http.MethodGet, "", "")
		require.NoError(t, ListPostsHandler(db, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, postsCacheKey, cachedKey)
		require.Contains(t, rec.Body.String(), "\"title\":\"Hello\"")
	})
}

func TestCreatePostHandler(t *testing.T) {
	e := newEcho()

	t.Run("no claims", func(t *testing.T) {
		ctx, rec := newPostCtx(e, http.MethodPost, "create", `{"title":"t","text":"x"}`)
		require.NoError(t, CreatePostHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		ctx, rec := newPostCtx(e, http.MethodPost, "create", "{not json")
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 1})
		require.NoError(t, CreatePostHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return errRow(errors.New("insert failed"))
		}}
		ctx, rec := newPostCtx(e, http.MethodPost, "create", `{"title":"t","text":"x"}`)
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 1})
		require.NoError(t, CreatePostHandler(db, nil, nil)(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("success invalidates index", func(t *testing.T) {
		now := time.Now().UTC()
		var insertArgs []any
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			insertArgs = args
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 7
				*dest[1].(*time.Time) = now
				return nil
			}}
		}}
		rec2 := &delRecorder{}
		cch, wp := rec2.cacheAndPool()

		ctx, rec := newPostCtx(e, http.MethodPost, "create", `{"title":"t","text":"x"}`)
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 3})
		require.NoError(t, CreatePostHandler(db, cch, wp)(ctx))
		wp.Stop()

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"id\":7")
		require.Equal(t, 3, insertArgs[2])
		require.Equal(t, []string{postsCacheKey}, rec2.deleted())
	})
}

func TestGetPostHandler(t *testing.T) {
	e := newEcho()

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newPostCtx(e, http.MethodGet, "x", "")
		require.NoError(t, GetPostHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return errRow(pgx.ErrNoRows)
		}}
		ctx, rec := newPostCtx(e, http.MethodGet, "1", "")
		require.NoError(t, GetPostHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return postRow(model.Post{ID: 1, Title: "Hello", AuthorID: 2, Published: true})
		}}
		ctx, rec := newPostCtx(e, http.MethodGet, "1", "")
		require.NoError(t, GetPostHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"title\":\"Hello\"")
	})
}

func TestUpdatePostHandler(t *testing.T) {
	e := newEcho()

	t.Run("no claims", func(t *testing.T) {
		ctx, rec := newPostCtx(e, http.MethodPatch, "1", "{}")
		require.NoError(t, UpdatePostHandler(nil, nil, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not the author", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return postRow(model.Post{ID: 1, AuthorID: 2})
		}}
		ctx, rec := newPostCtx(e, http.MethodPatch, "1", `{"title":"new"}`)
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 3})
		require.NoError(t, UpdatePostHandler(db, nil, nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can edit others", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return postRow(model.Post{ID: 1, Title: "old", AuthorID: 2, Published: true})
			},
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		rec2 := &delRecorder{}
		cch, wp := rec2.cacheAndPool()

		ctx, rec := newPostCtx(e, http.MethodPatch, "1", `{"title":"new"}`)
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 9, IsAdmin: true})
		require.NoError(t, UpdatePostHandler(db, cch, wp)(ctx))
		wp.Stop()

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"title\":\"new\"")
		require.Equal(t, []string{postsCacheKey}, rec2.deleted())
	})
}

func TestDeletePostHandler(t *testing.T) {
	e := newEcho()

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return errRow(pgx.ErrNoRows)
		}}
		ctx, rec := newPostCtx(e, http.MethodDelete, "1", "")
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 1})
		require.NoError(t, DeletePostHandler(db, nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not the author", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return postRow(model.Post{ID: 1, AuthorID: 2})
		}}
		ctx, rec := newPostCtx(e, http.MethodDelete, "1", "")
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 3})
		require.NoError(t, DeletePostHandler(db, nil, nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return postRow(model.Post{ID: 1, AuthorID: 3})
			},
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		rec2 := &delRecorder{}
		cch, wp := rec2.cacheAndPool()

		ctx, rec := newPostCtx(e, http.MethodDelete, "1", "")
		ctx.Set(middleware.ContextUserKey, &service.AccessClaims{UserID: 3})
		require.NoError(t, DeletePostHandler(db, cch, wp)(ctx))
		wp.Stop()

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{postsCacheKey}, rec2.deleted())
	})
}
