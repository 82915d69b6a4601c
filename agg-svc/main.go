package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dinefine/agg-svc/internal/service"
	"dinefine/agg-svc/internal/storage"
	"dinefine/config"
	"dinefine/logging"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.MustNew("agg-svc", cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Fatalf("Failed to ensure schema: %v", err)
	}

	reader := config.NewKafkaReader(cfg, config.MenuScansTopic, "agg-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, store, logger).Start(ctx)
}
