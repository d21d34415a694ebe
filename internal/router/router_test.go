// File: internal/router/router_test.go
package router

import (
	"net/http"
	"testing"

	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		http.MethodGet + " /api",
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/users",
		http.MethodPost + " /api/users/signup",
		http.MethodPost + " /api/users/login",
		http.MethodPost + " /api/users/refreshToken",
		http.MethodGet + " /api/users/me",
		http.MethodGet + " /api/users/logout",
		http.MethodGet + " /api/users/:id",
		http.MethodPatch + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/posts",
		http.MethodPost + " /api/posts/create",
		http.MethodGet + " /api/posts/:id",
		http.MethodPatch + " /api/posts/:id",
		http.MethodDelete + " /api/posts/:id",
		http.MethodGet + " /api/posts/:id/comments",
		http.MethodPost + " /api/posts/:id/comments/create",
		http.MethodGet + " /api/posts/:id/comments/:commentId",
		http.MethodPatch + " /api/posts/:id/comments/:commentId",
		http.MethodDelete + " /api/posts/:id/comments/:commentId",
	}
	for _, route := range expected {
		require.True(t, registered[route], route)
	}
}
