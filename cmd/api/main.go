package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"relotrack/internal/config"
	"relotrack/internal/handler"
	"relotrack/internal/httpserver"
	"relotrack/internal/repository"
	authservice "relotrack/internal/service/auth"
	"relotrack/internal/service/onboarding"
	"relotrack/pkg/db"
	"relotrack/pkg/logger"
	"relotrack/pkg/mq"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting relotrack-api...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("port", cfg.Server.Port),
	)

	// DB
	log.Info("Initializing database connection...")
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()
	log.Info("Database connection established successfully")

	// MQ Publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	clientRepo := repository.NewClientRepository(dbConn, log)
	milestoneRepo := repository.NewMilestoneRepository(dbConn, log)
	profileRepo := repository.NewProfileRepository(dbConn, log)

	// Services
	onboardingService := onboarding.NewService(clientRepo, milestoneRepo, profileRepo, publisher, log)
	authService := authservice.NewService(profileRepo, cfg.JWT.Secret, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	clientHandler := handler.NewClientHandler(onboardingService, log)
	milestoneHandler := handler.NewMilestoneHandler(onboardingService, log)
	statsHandler := handler.NewStatsHandler(onboardingService, log)

	// HTTP Server
	router := httpserver.NewRouter(authHandler, clientHandler, milestoneHandler, statsHandler, cfg.JWT.Secret, dbConn, publisher)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("relotrack-api is fully initialized and running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down relotrack-api gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	publisher.Close()
	dbConn.Close()

	log.Info("relotrack-api shutdown complete")
}
