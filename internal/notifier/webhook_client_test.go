package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestDeliverPostsJSON(t *testing.T) {
	var gotContentType string
	var gotBody int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody = r.ContentLength
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(zap.NewNop())
	err := client.Deliver(context.Background(), "milestone_completed", srv.URL, map[string]int{"milestone_id": 7})
	if err != nil {
		t.Fatalf("Deliver returned error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected application/json, got %q", gotContentType)
	}
	if gotBody == 0 {
		t.Fatal("expected non-empty body")
	}
}

func TestDeliverEmptyURLIsNoop(t *testing.T) {
	client := NewWebhookClient(zap.NewNop())
	if err := client.Deliver(context.Background(), "milestone_delayed", "", nil); err != nil {
		t.Fatalf("empty URL should be a noop, got error: %v", err)
	}
}

func TestDeliverNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWebhookClient(zap.NewNop())
	if err := client.Deliver(context.Background(), "milestone_completed", srv.URL, nil); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestDeliverBreakerOpensOnRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewWebhookClient(zap.NewNop())
	for i := 0; i < 10; i++ {
		_ = client.Deliver(context.Background(), "milestone_completed", srv.URL, nil)
	}

	// Once the breaker is open the request never reaches the server.
	srv.Close()
	if err := client.Deliver(context.Background(), "milestone_completed", srv.URL, nil); err == nil {
		t.Fatal("expected error while breaker is open")
	}
}
