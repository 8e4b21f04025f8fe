package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaushalkrsna1602/Samay-Sahayak/config"
	"github.com/kaushalkrsna1602/Samay-Sahayak/middleware"
	"github.com/kaushalkrsna1602/Samay-Sahayak/routes"
	"github.com/kaushalkrsna1602/Samay-Sahayak/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	logger, err := buildLogger(cfg.ServerEnv)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting application", zap.String("env", cfg.ServerEnv))

	if err := config.ConnectDB(context.Background(), cfg.MongoURI, logger); err != nil {
		// Keep serving; store-backed endpoints report the outage themselves.
		logger.Error("mongodb unavailable", zap.Error(err))
	} else if err := config.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("creating indexes", zap.Error(err))
	}

	ai := services.NewGeminiClient(cfg.GeminiAPIKey, logger)

	if cfg.ServerEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
	}))

	api := r.Group("/api")
	routes.SetupRoutes(api, ai)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down gracefully")

	// Close the listener first, then the database connection.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("closing http server", zap.Error(err))
	}
	if err := config.DisconnectDB(ctx); err != nil {
		logger.Error("closing mongodb connection", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
