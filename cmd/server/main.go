package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/neswanths/Blinky/internal/app/config"
	"github.com/neswanths/Blinky/internal/app/router"
	authadapters "github.com/neswanths/Blinky/internal/feature/auth/adapters"
	authhandler "github.com/neswanths/Blinky/internal/feature/auth/transport/handler"
	authusecase "github.com/neswanths/Blinky/internal/feature/auth/usecase"
	bookmarksadapters "github.com/neswanths/Blinky/internal/feature/bookmarks/adapters"
	bookmarkshandler "github.com/neswanths/Blinky/internal/feature/bookmarks/transport/handler"
	bookmarksusecase "github.com/neswanths/Blinky/internal/feature/bookmarks/usecase"
	infradb "github.com/neswanths/Blinky/internal/platform/db"
	jwtmw "github.com/neswanths/Blinky/internal/platform/jwt"
	"github.com/neswanths/Blinky/internal/platform/ratelimit"
	infraredis "github.com/neswanths/Blinky/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定はここで一度だけ読み込む（BLINKY_SECRET_KEY未設定なら起動拒否）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis（ログインレート制限用、無ければ無効化して継続）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		log.Println("[INFO] REDIS_HOST not set. Login rate limiting disabled.")
	} else if tmp, err := infraredis.NewClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Login rate limiting disabled.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	domainRepo := bookmarksadapters.NewDomainGorm(db)
	bookmarkRepo := bookmarksadapters.NewBookmarkGorm(db)

	// Token service
	tokens := jwtmw.NewTokenService(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	bookmarkUC := bookmarksusecase.NewBookmarkUsecase(domainRepo, bookmarkRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	domainH := bookmarkshandler.NewDomainHandler(bookmarkUC)
	bookmarkH := bookmarkshandler.NewBookmarkHandler(bookmarkUC)

	// ログイン試行のレート制限（IPごと、1分あたり10回）
	limiter := ratelimit.NewLoginLimiter(rdb, 10, time.Minute)

	// ルータ生成
	r := router.NewRouter(
		authH,
		domainH,
		bookmarkH,
		jwtmw.AuthRequired(tokens, userRepo),
		limiter.Middleware(),
		cfg.AllowedOrigins,
	)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
