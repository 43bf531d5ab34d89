package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"relotrack/pkg/circuitbreaker"
	"relotrack/pkg/metrics"
)

// WebhookClient delivers event payloads to an external webhook URL behind a
// circuit breaker. Delivery is best-effort: failures trip the breaker so a
// dead endpoint stops consuming consumer throughput.
type WebhookClient struct {
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewWebhookClient(logger *zap.Logger) *WebhookClient {
	return &WebhookClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
		logger:     logger,
	}
}

// Deliver posts the payload as JSON. The event name labels the delivery
// metrics.
func (w *WebhookClient) Deliver(ctx context.Context, event, url string, payload any) error {
	if url == "" {
		w.logger.Debug("Webhook URL not configured, skipping delivery", zap.String("event", event))
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	start := time.Now()
	err = w.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return nil
	})

	if err != nil {
		metrics.RecordWebhookDelivery(event, "failure", time.Since(start))
		w.logger.Error("Webhook delivery failed",
			zap.String("event", event),
			zap.String("url", url),
			zap.Error(err),
		)
		return err
	}

	metrics.RecordWebhookDelivery(event, "success", time.Since(start))
	w.logger.Info("Webhook delivered",
		zap.String("event", event),
		zap.Duration("latency", time.Since(start)),
	)
	return nil
}
