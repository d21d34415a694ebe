// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/handler"
	"blog-api/internal/handler/comments"
	"blog-api/internal/handler/posts"
	"blog-api/internal/handler/users"
	"blog-api/internal/middleware"
	"blog-api/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("", handler.IndexHandler())

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth)

	// 使用者與 session 生命週期
	api.GET("/users", users.ListUsersHandler(db))
	api.POST("/users/signup", users.SignupHandler(db))
	api.POST("/users/login", users.LoginHandler(db))
	api.POST("/users/refreshToken", users.RefreshTokenHandler(db))
	api.GET("/users/me", users.GetMeHandler(db), middleware.RequireAuth)
	api.GET("/users/logout", users.LogoutHandler(db), middleware.RequireAuth)

	// 其餘使用者操作，更新與刪除為管理員限定
	api.GET("/users/:id", users.GetUserHandler(db))
	api.PATCH("/users/:id", users.UpdateUserHandler(db), middleware.RequireAdmin)
	api.DELETE("/users/:id", users.DeleteUserHandler(db), middleware.RequireAdmin)

	// 文章
	api.GET("/posts", posts.ListPostsHandler(db, cch))
	api.POST("/posts/create", posts.CreatePostHandler(db, cch, wp), middleware.RequireAuth)
	api.GET("/posts/:id", posts.GetPostHandler(db))
	api.PATCH("/posts/:id", posts.UpdatePostHandler(db, cch, wp), middleware.RequireAuth)
	api.DELETE("/posts/:id", posts.DeletePostHandler(db, cch, wp), middleware.RequireAuth)

	// 留言
	api.GET("/posts/:id/comments", comments.ListCommentsHandler(db))
	api.POST("/posts/:id/comments/create", comments.CreateCommentHandler(db), middleware.RequireAuth)
	api.GET("/posts/:id/comments/:commentId", comments.GetCommentHandler(db))
	api.PATCH("/posts/:id/comments/:commentId", comments.UpdateCommentHandler(db), middleware.RequireAuth)
	api.DELETE("/posts/:id/comments/:commentId", comments.DeleteCommentHandler(db), middleware.RequireAuth)
}
