package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/neswanths/Blinky/internal/feature/auth/transport/handler"
	bookmarkshandler "github.com/neswanths/Blinky/internal/feature/bookmarks/transport/handler"
	"github.com/neswanths/Blinky/internal/platform/http/handler"
)

// NewRouter wires every route of the service. The auth middleware and the
// login rate limiter are injected so that the router stays free of secrets
// and storage concerns.
func NewRouter(
	authHandler *authhandler.AuthHandler,
	domains *bookmarkshandler.DomainHandler,
	bookmarks *bookmarkshandler.BookmarkHandler,
	authRequired gin.HandlerFunc,
	loginLimit gin.HandlerFunc,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()

	// CORS: ブラウザフロントエンドの許可リスト
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.GET("/", handler.Root)
	// 新規ユーザー登録
	r.POST("/users", authHandler.Register)
	// ログイン（アクセストークン発行、レート制限付き）
	r.POST("/token", loginLimit, authHandler.Token)

	// 認証必須のルート
	// リクエストヘッダーにBearerトークンが必要になる
	auth := r.Group("/")
	auth.Use(authRequired)
	{
		auth.GET("/users/me", authHandler.Me)

		auth.POST("/domains", domains.Create)
		auth.GET("/domains", domains.List)
		auth.PUT("/domains/:id", domains.Rename)
		auth.DELETE("/domains/:id", domains.Delete)

		auth.POST("/bookmarks", bookmarks.Create)
		auth.GET("/bookmarks/:domain_id", bookmarks.ListByDomain)
		auth.PUT("/bookmarks/:id", bookmarks.Retitle)
		auth.DELETE("/bookmarks/:id", bookmarks.Delete)
	}

	return r
}
