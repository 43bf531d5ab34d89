package notifier

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	mqcontracts "relotrack/contracts/mq"
	"relotrack/pkg/config"
)

type recordingDeliverer struct {
	events   []string
	urls     []string
	payloads []any
	err      error
}

func (r *recordingDeliverer) Deliver(ctx context.Context, event, url string, payload any) error {
	r.events = append(r.events, event)
	r.urls = append(r.urls, url)
	r.payloads = append(r.payloads, payload)
	return r.err
}

func TestSummaryHandlerForwardsDigest(t *testing.T) {
	rec := &recordingDeliverer{}
	h := NewSummaryHandler(rec, config.WebhookConfig{SummaryURL: "http://hooks/summary"}, zap.NewNop())

	payload := mqcontracts.DailySummaryPayload{
		Date:     "2026-03-01",
		DueToday: 2,
		Delayed:  1,
	}
	raw, _ := json.Marshal(payload)

	if err := h.Handle(context.Background(), raw); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(rec.events) != 1 || rec.events[0] != "daily_summary" {
		t.Fatalf("expected one daily_summary delivery, got %v", rec.events)
	}
	if rec.urls[0] != "http://hooks/summary" {
		t.Fatalf("delivered to wrong url %q", rec.urls[0])
	}
}

func TestSummaryHandlerRejectsMalformedPayload(t *testing.T) {
	rec := &recordingDeliverer{}
	h := NewSummaryHandler(rec, config.WebhookConfig{}, zap.NewNop())

	if err := h.Handle(context.Background(), json.RawMessage(`{not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if len(rec.events) != 0 {
		t.Fatalf("no delivery expected, got %v", rec.events)
	}
}
