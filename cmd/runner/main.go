package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"relotrack/internal/config"
	"relotrack/internal/repository"
	"relotrack/internal/runner"
	"relotrack/pkg/db"
	"relotrack/pkg/logger"
	"relotrack/pkg/mq"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	cronSpec := cfg.Summary.CronSpec
	if cronSpec == "" {
		cronSpec = "0 7 * * *"
	}

	log.Info("Starting relotrack-runner...",
		zap.String("db_host", cfg.DB.Host),
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("cron_spec", cronSpec),
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

	// Repositories and job
	clientRepo := repository.NewClientRepository(dbConn, log)
	milestoneRepo := repository.NewMilestoneRepository(dbConn, log)
	job := runner.NewSummaryJob(clientRepo, milestoneRepo, publisher, log)

	c := cron.New()
	_, err = c.AddFunc(cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := job.Run(ctx, time.Now().UTC()); err != nil {
			log.Error("Daily summary run failed", zap.Error(err))
		}
	})
	if err != nil {
		log.Fatal("Invalid cron spec", zap.String("cron_spec", cronSpec), zap.Error(err))
	}

	c.Start()
	log.Info("relotrack-runner is fully initialized and running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down relotrack-runner gracefully...")

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(2 * time.Minute):
		log.Warn("Timed out waiting for running job to finish")
	}

	publisher.Close()
	dbConn.Close()

	log.Info("relotrack-runner shutdown complete")
}
