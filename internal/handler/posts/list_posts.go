// File: internal/handler/posts/list_posts.go
package posts

import (
	"encoding/json"
	"net/http"

	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/dto"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
)

// ListPostsHandler 依建立時間序回傳所有文章，結果做短期快取
// @Summary     文章列表
// @Tags        posts
// @Produce     json
// @Success     200 {object} dto.PostsIndexResponse
// @Failure     503 {object} dto.HTTPError
// @Router      /posts [get]
func ListPostsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if val, err := cch.Get(ctx, postsCacheKey).Result(); err == nil && val != "" {
			return c.JSONBlob(http.StatusOK, []byte(val))
		}

		posts, err := store.ListPosts(ctx, db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}

		resp := dto.PostsIndexResponse{Posts: make([]dto.PostResponse, 0, len(posts))}
		for _, p := range posts {
			resp.Posts = append(resp.Posts, dto.PostResponse{
				ID:        p.ID,
				Title:     p.Title,
				Text:      p.Text,
				AuthorID:  p.AuthorID,
				Published: p.Published,
				CreatedAt: p.CreatedAt,
			})
		}

		buf, err := json.Marshal(resp)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "service unavailable"})
		}
		// 快取失敗不影響回應
		cch.Set(ctx, postsCacheKey, buf, postsCacheTTL)
		return c.JSONBlob(http.StatusOK, buf)
	}
}
