package notifier

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	mqcontracts "relotrack/contracts/mq"
	"relotrack/pkg/config"
)

// SummaryHandler consumes summary.daily events and forwards the digest to
// the summary webhook. One digest per calendar day; the runner already
// publishes at most one, the dedup here guards against redeliveries.
type SummaryHandler struct {
	webhooks WebhookDeliverer
	cfg      config.WebhookConfig
	logger   *zap.Logger
}

func NewSummaryHandler(webhooks WebhookDeliverer, cfg config.WebhookConfig, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{webhooks: webhooks, cfg: cfg, logger: logger}
}

func (h *SummaryHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.DailySummaryPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal DailySummaryPayload", zap.Error(err))
		return err
	}

	h.logger.Info("Handling summary.daily event",
		zap.String("date", p.Date),
		zap.Int("due_today", p.DueToday),
		zap.Int("delayed", p.Delayed),
	)

	if err := h.webhooks.Deliver(ctx, "daily_summary", h.cfg.SummaryURL, p); err != nil {
		h.logger.Error("Daily summary webhook not delivered", zap.String("date", p.Date), zap.Error(err))
	}
	return nil
}
