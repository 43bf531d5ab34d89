package notifier

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	mqcontracts "relotrack/contracts/mq"
	"relotrack/internal/model"
	"relotrack/pkg/config"
	"relotrack/pkg/util"
)

// StatusChangedHandler consumes milestone.status_changed events and forwards
// completed and delayed transitions to their webhook endpoints. Transitions
// back to pending are acknowledged without delivery.
type StatusChangedHandler struct {
	webhooks WebhookDeliverer
	cfg      config.WebhookConfig
	deduper  *util.Deduper
	logger   *zap.Logger
}

// WebhookDeliverer is what the handler needs from the webhook client.
type WebhookDeliverer interface {
	Deliver(ctx context.Context, event, url string, payload any) error
}

func NewStatusChangedHandler(webhooks WebhookDeliverer, cfg config.WebhookConfig, deduper *util.Deduper, logger *zap.Logger) *StatusChangedHandler {
	return &StatusChangedHandler{
		webhooks: webhooks,
		cfg:      cfg,
		deduper:  deduper,
		logger:   logger,
	}
}

func (h *StatusChangedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.MilestoneStatusChangedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal MilestoneStatusChangedPayload", zap.Error(err))
		return err
	}

	h.logger.Info("Handling milestone.status_changed event",
		zap.Int("milestone_id", p.MilestoneID),
		zap.Int("client_id", p.ClientID),
		zap.String("new_status", p.NewStatus),
		zap.String("trace_id", p.TraceID),
	)

	if !h.deduper.AcquireOnce(ctx, "status_changed_"+p.NewStatus, p.MilestoneID) {
		h.logger.Info("Duplicate status change, skipping",
			zap.Int("milestone_id", p.MilestoneID),
			zap.String("new_status", p.NewStatus),
		)
		return nil
	}

	switch p.NewStatus {
	case model.StatusCompleted:
		// Webhook failures are not retried through the queue: the breaker
		// and dedup key already decided this delivery's fate.
		if err := h.webhooks.Deliver(ctx, "milestone_completed", h.cfg.CompletedURL, p); err != nil {
			h.logger.Error("Completed webhook not delivered", zap.Int("milestone_id", p.MilestoneID), zap.Error(err))
		}
	case model.StatusDelayed:
		if err := h.webhooks.Deliver(ctx, "milestone_delayed", h.cfg.DelayedURL, p); err != nil {
			h.logger.Error("Delayed webhook not delivered", zap.Int("milestone_id", p.MilestoneID), zap.Error(err))
		}
	default:
		h.logger.Debug("No webhook for status", zap.String("status", p.NewStatus))
	}

	return nil
}
