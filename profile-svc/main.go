package main

import (
	"context"

	"dinefine/config"
	"dinefine/logging"
	httpapi "dinefine/profile-svc/internal/api/http"
	"dinefine/profile-svc/internal/service"
	"dinefine/profile-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.MustNew("profile-svc", cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(context.Background()); err != nil {
		logger.Fatalf("Failed to ensure schema: %v", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	svc := service.NewProfileService(
		repository,
		storage.NewRedisCache(rdb, cfg.PreferencesCacheTTL),
		logger,
	)

	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(cfg.Addr(":8082"), httpapi.NewRouter(handler), logger)
}
