package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	mqcontracts "relotrack/contracts/mq"
	"relotrack/internal/config"
	"relotrack/internal/notifier"
	"relotrack/pkg/logger"
	"relotrack/pkg/mq"
	"relotrack/pkg/redis"
	"relotrack/pkg/util"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting relotrack-notifier...",
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("redis_addr", cfg.Redis.Addr),
	)

	// Redis for delivery dedup
	rdb := redis.NewRedisClient(cfg.Redis)
	defer rdb.Close()
	deduper := util.NewDeduper(rdb, 24*time.Hour, log)

	// Webhook delivery behind a circuit breaker
	webhooks := notifier.NewWebhookClient(log)

	// MQ Handlers
	statusHandler := notifier.NewStatusChangedHandler(webhooks, cfg.Webhook, deduper, log)
	summaryHandler := notifier.NewSummaryHandler(webhooks, cfg.Webhook, log)

	// Consumer for milestone.status_changed
	log.Info("Initializing MQ consumer for milestone.status_changed...",
		zap.String("queue", "milestone.status_changed.q"),
		zap.String("routing_key", mqcontracts.RoutingKeyMilestoneStatusChanged),
	)
	statusConsumer, err := mq.NewConsumer(cfg.MQ.URL, "milestone.status_changed.q", mqcontracts.RoutingKeyMilestoneStatusChanged, log)
	if err != nil {
		log.Fatal("Failed to init status consumer", zap.Error(err))
	}
	defer statusConsumer.Close()
	statusConsumer.SetHandler(statusHandler.Handle)

	go func() {
		log.Info("Starting milestone.status_changed consumer...")
		if err := statusConsumer.StartConsuming(); err != nil {
			log.Fatal("Status consumer failed", zap.Error(err))
		}
	}()

	// Consumer for summary.daily
	log.Info("Initializing MQ consumer for summary.daily...",
		zap.String("queue", "summary.daily.q"),
		zap.String("routing_key", mqcontracts.RoutingKeyDailySummary),
	)
	summaryConsumer, err := mq.NewConsumer(cfg.MQ.URL, "summary.daily.q", mqcontracts.RoutingKeyDailySummary, log)
	if err != nil {
		log.Fatal("Failed to init summary consumer", zap.Error(err))
	}
	defer summaryConsumer.Close()
	summaryConsumer.SetHandler(summaryHandler.Handle)

	go func() {
		log.Info("Starting summary.daily consumer...")
		if err := summaryConsumer.StartConsuming(); err != nil {
			log.Fatal("Summary consumer failed", zap.Error(err))
		}
	}()

	log.Info("relotrack-notifier is fully initialized and running")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down relotrack-notifier gracefully...")

	statusConsumer.Stop()
	summaryConsumer.Stop()

	log.Info("relotrack-notifier shutdown complete")
}
