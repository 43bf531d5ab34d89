package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

func TestOpensAfterFailureThreshold(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		FailureThreshold:    3,
		SuccessThreshold:    1,
		Timeout:             time.Minute,
		HalfOpenMaxRequests: 1,
	})

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		if err := cb.Execute(func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}

	if err := cb.Execute(func() error { return nil }); !errors.Is(err, ErrCircuitBreakerOpen) {
		t.Fatalf("expected open breaker, got %v", err)
	}
	if cb.GetState() != StateOpen {
		t.Fatalf("expected open state, got %v", cb.GetState())
	}
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		FailureThreshold:    2,
		SuccessThreshold:    1,
		Timeout:             time.Minute,
		HalfOpenMaxRequests: 1,
	})

	boom := errors.New("boom")
	_ = cb.Execute(func() error { return boom })
	_ = cb.Execute(func() error { return nil })
	_ = cb.Execute(func() error { return boom })

	// The intermediate success reset the streak, so the breaker stays closed.
	if cb.GetState() != StateClosed {
		t.Fatalf("expected closed state, got %v", cb.GetState())
	}
}

func TestHalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		FailureThreshold:    1,
		SuccessThreshold:    2,
		Timeout:             10 * time.Millisecond,
		HalfOpenMaxRequests: 2,
	})

	_ = cb.Execute(func() error { return errors.New("boom") })
	// The open transition is applied lazily on the next call.
	if err := cb.Execute(func() error { return nil }); !errors.Is(err, ErrCircuitBreakerOpen) {
		t.Fatalf("expected open breaker, got %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	for i := 0; i < 2; i++ {
		if err := cb.Execute(func() error { return nil }); err != nil {
			t.Fatalf("probe %d failed: %v", i, err)
		}
	}
	// Next execute runs the half-open -> closed transition check.
	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if cb.GetState() != StateClosed {
		t.Fatalf("expected closed after recovery, got %v", cb.GetState())
	}
}

func TestReset(t *testing.T) {
	cb := NewCircuitBreaker(Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, HalfOpenMaxRequests: 1})
	_ = cb.Execute(func() error { return errors.New("boom") })
	_ = cb.Execute(func() error { return nil }) // trips the open transition
	cb.Reset()
	if cb.GetState() != StateClosed {
		t.Fatalf("expected closed after reset, got %v", cb.GetState())
	}
}
