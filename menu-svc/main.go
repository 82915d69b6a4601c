package main

import (
	"context"

	"dinefine/config"
	"dinefine/logging"
	httpapi "dinefine/menu-svc/internal/api/http"
	"dinefine/menu-svc/internal/service"
	"dinefine/menu-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.MustNew("menu-svc", cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(context.Background()); err != nil {
		logger.Fatalf("Failed to ensure schema: %v", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg, config.MenuScansTopic)
	defer writer.Close()

	svc := service.NewMenuService(
		repository,
		storage.NewRedisCache(rdb, cfg.MenuCacheTTL),
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		logger,
	)

	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(cfg.Addr(":8081"), httpapi.NewRouter(handler), logger)
}
