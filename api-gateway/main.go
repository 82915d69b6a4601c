package main

import (
	"net/http"
	"time"

	"dinefine/api-gateway/internal/gateway"
	"dinefine/config"
	"dinefine/logging"

	"github.com/rs/cors"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.MustNew("api-gateway", cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:      cfg.MenuSvcURL,
		ProfileSvcURL:   cfg.ProfileSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{Timeout: 15 * time.Second}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := cfg.Addr(":8080")
	logger.Infof("API Gateway starting on %s", addr)
	logger.Fatal(http.ListenAndServe(addr, handler))
}
