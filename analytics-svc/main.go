package main

import (
	httpapi "dinefine/analytics-svc/internal/api/http"
	"dinefine/analytics-svc/internal/service"
	"dinefine/config"
	"dinefine/logging"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.MustNew("analytics-svc", cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	svc := service.NewAnalyticsService(db, rdb, logger)
	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(cfg.Addr(":8083"), httpapi.NewRouter(handler), logger)
}
