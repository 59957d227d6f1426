package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mdKamrul-h/bulksms-proxy/internal/routes"
	"github.com/mdKamrul-h/bulksms-proxy/logger"
	"github.com/mdKamrul-h/bulksms-proxy/metrics"
	"github.com/mdKamrul-h/bulksms-proxy/middlewares"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/config"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/gosms"
)

func main() {
	cfg := config.Load()

	log, err := logger.InitLogger()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
	log.Info("Logger initialized")

	metrics.InitAPIMetrics()

	gw := gosms.NewClient(cfg.GatewayURL, cfg.APIKey, log)

	router := gin.Default()
	router.Use(middlewares.GinMetricsMiddleware())
	router.Use(middlewares.RequestLogger(log))

	health := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bulksms-proxy"})
	}
	router.GET("/", health)
	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api")
	routes.SMS(v1, cfg, gw, log)

	go handleShutdown(log)

	log.Info("SMS proxy listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}

func handleShutdown(log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	os.Exit(0)
}
