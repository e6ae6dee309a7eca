package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"chime_backend/internal/app/di"
	"chime_backend/internal/app/router"
	submissionadapters "chime_backend/internal/feature/submissions/adapters"
	submissionhandler "chime_backend/internal/feature/submissions/transport/handler"
	submissionusecase "chime_backend/internal/feature/submissions/usecase"
	"chime_backend/internal/feature/tokens/adapters/chartimg"
	tokenshandler "chime_backend/internal/feature/tokens/transport/handler"
	tokensusecase "chime_backend/internal/feature/tokens/usecase"
	"chime_backend/internal/platform/cache"
	infradb "chime_backend/internal/platform/db"
	infraredis "chime_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	submissionRepo := submissionadapters.NewSubmissionRepository(db)
	market := di.NewMarket()

	// コイン一覧をRedisキャッシュでラップ
	cachedMarket := cache.NewCachingMarketRepository(rdb, 10*time.Minute, market, "coins")

	// Usecase
	submissionUC := submissionusecase.NewSubmissionUsecase(submissionRepo)
	tokensUC := tokensusecase.NewTokensUsecase(cachedMarket)
	chartUC := tokensusecase.NewChartUsecase(cachedMarket, chartimg.NewRenderer(), tokensusecase.NewChartPacer())

	// Handler
	submissionH := submissionhandler.NewSubmissionHandler(submissionUC)
	tokensH := tokenshandler.NewTokensHandler(tokensUC, chartUC)

	// ルータ生成
	router := router.NewRouter(submissionH, tokensH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
