package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holocron-go/internal/api/handler"
	"holocron-go/internal/api/router"
	"holocron-go/internal/config"
	"holocron-go/internal/infra/database"
	infraKafka "holocron-go/internal/infra/kafka"
	infraRedis "holocron-go/internal/infra/redis"
	"holocron-go/internal/repository"
	"holocron-go/internal/service"
	"holocron-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Holocron API
// @version 1.0
// @description Star Wars 人物、星球与用户收藏 API
// @BasePath /

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	// .env 不存在时直接使用系统环境变量
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	// Redis 为可选的参考数据缓存
	var cache service.Cache
	if cfg.Redis.Enabled {
		client, err := infraRedis.NewClient(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis init failed, catalog cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cache = infraRedis.NewJSONCache(client)
		}
	}

	// Kafka 为可选的收藏事件通道
	var publisher service.EventPublisher
	if cfg.Kafka.Enabled {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		publisher = producer
	}

	// 初始化依赖（Repository -> Service -> Handler）
	peopleRepo := repository.NewPeopleRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	catalogService := service.NewCatalogService(peopleRepo, planetRepo, cache, cfg.Redis.TTL())
	userService := service.NewUserService(userRepo, favoriteRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, publisher).
		WithPublishTimeout(cfg.Kafka.PublishTimeout())

	gin.SetMode(cfg.App.Mode)
	r := router.NewEngine(&cfg.CORS)
	router.Setup(r, router.Handlers{
		People:   handler.NewPeopleHandler(catalogService),
		Planet:   handler.NewPlanetHandler(catalogService),
		User:     handler.NewUserHandler(userService),
		Favorite: handler.NewFavoriteHandler(favoriteService),
	}, cfg.App)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router.StripTrailingSlash(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.Bool("redis", cache != nil),
		zap.Bool("kafka", publisher != nil),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
