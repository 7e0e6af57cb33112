package main

import (
	"context"
	"flag"
	"fmt"

	"holocron-go/internal/config"
	"holocron-go/internal/infra/database"
	infraRedis "holocron-go/internal/infra/redis"
	"holocron-go/internal/repository"
	"holocron-go/internal/seed"
	"holocron-go/internal/service"
	"holocron-go/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// 建表并可选写入初始化数据
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	withSeed := flag.Bool("seed", false, "load seed users, people and planets after migrating")
	seedFile := flag.String("seed-file", "", "YAML seed file, defaults to the embedded data set")
	flag.Parse()

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

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	if !*withSeed {
		return
	}

	data, err := seed.Load(*seedFile)
	if err != nil {
		logger.Fatal("Failed to load seed data", zap.Error(err))
	}
	ctx := context.Background()
	if err := seed.Apply(ctx, db, data); err != nil {
		logger.Fatal("Failed to apply seed data", zap.Error(err))
	}

	// 正在运行的 API 可能缓存了旧列表
	if !cfg.Redis.Enabled {
		return
	}
	client, err := infraRedis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, catalog cache not invalidated", zap.Error(err))
		return
	}
	defer client.Close()

	catalog := service.NewCatalogService(repository.NewPeopleRepository(db), repository.NewPlanetRepository(db),
		infraRedis.NewJSONCache(client), cfg.Redis.TTL())
	if err := catalog.InvalidateListings(ctx); err != nil {
		logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
		return
	}
	logger.Info("Catalog cache invalidated")
}
