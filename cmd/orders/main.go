package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-catalog-orderflow/internal/catalogclient"
	"github.com/imrishuroy/go-catalog-orderflow/internal/config"
	"github.com/imrishuroy/go-catalog-orderflow/internal/handlers"
	"github.com/imrishuroy/go-catalog-orderflow/internal/logging"
	"github.com/imrishuroy/go-catalog-orderflow/internal/metrics"
	"github.com/imrishuroy/go-catalog-orderflow/internal/middleware"
	"github.com/imrishuroy/go-catalog-orderflow/internal/orders"
)

const serviceName = "order-service"

func setupRouter(cfg handlers.OrdersConfig, m *metrics.ServerMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	if m != nil {
		r.Use(m.Middleware())
	}

	handlers.RegisterHealthRoute(r, serviceName)
	r.GET("/metrics", metrics.Handler())
	handlers.RegisterOrdersRoutes(r, cfg)

	return r
}

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoadOrders()

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Env: cfg.Env})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("using product service",
		zap.String("url", cfg.ProductServiceURL),
		zap.Duration("timeout", cfg.CatalogTimeout),
	)

	store := orders.NewStore()
	catalogClient := catalogclient.New(cfg.ProductServiceURL, cfg.CatalogTimeout)

	m := metrics.NewServerMetrics("orders")

	r := setupRouter(handlers.OrdersConfig{
		Store:   store,
		Catalog: catalogClient,
		Logger:  logger,
	}, m)

	srv := &http.Server{Addr: cfg.HTTPPort, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("order service listening", zap.String("addr", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
