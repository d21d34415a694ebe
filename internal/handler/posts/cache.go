// File: internal/handler/posts/cache.go
package posts

import (
	"context"
	"time"

	"blog-api/internal/cache"
	"blog-api/internal/worker"
)

// 文章列表快取：短 TTL，寫入後以 worker 非同步失效
const (
	postsCacheKey = "posts:index"
	postsCacheTTL = 30 * time.Second
)

// invalidateIndex 把快取失效丟到 worker pool，不佔用請求路徑
func invalidateIndex(wp worker.Pool, cch cache.Cache) {
	wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cch.Del(ctx, postsCacheKey)
	})
}
