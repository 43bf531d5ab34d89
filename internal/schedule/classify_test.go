package schedule

import (
	"testing"
	"time"

	"relotrack/internal/model"
)

func TestIsOverdue(t *testing.T) {
	deadline := date(2025, time.February, 13)

	m := model.Milestone{Deadline: &deadline, Status: model.StatusPending}
	if !IsOverdue(m, date(2025, time.February, 20)) {
		t.Fatal("pending milestone past its deadline should be overdue")
	}
	if IsOverdue(m, date(2025, time.February, 13)) {
		t.Fatal("milestone due today is not overdue")
	}
	if IsOverdue(m, date(2025, time.February, 10)) {
		t.Fatal("milestone before its deadline is not overdue")
	}

	m.Status = model.StatusCompleted
	if IsOverdue(m, date(2025, time.February, 20)) {
		t.Fatal("completed milestone is never overdue")
	}
	m.Status = model.StatusDelayed
	if IsOverdue(m, date(2025, time.February, 20)) {
		t.Fatal("delayed milestone is never overdue")
	}

	m = model.Milestone{Status: model.StatusPending}
	if IsOverdue(m, date(2025, time.February, 20)) {
		t.Fatal("milestone without deadline is never overdue")
	}
}

func TestOverdueMonotonic(t *testing.T) {
	deadline := date(2025, time.February, 13)
	m := model.Milestone{Deadline: &deadline, Status: model.StatusPending}

	obs := date(2025, time.February, 14)
	if !IsOverdue(m, obs) {
		t.Fatal("expected overdue at first observation")
	}
	for i := 1; i <= 60; i++ {
		if !IsOverdue(m, obs.AddDate(0, 0, i)) {
			t.Fatalf("overdue reversed %d days later", i)
		}
	}
}

func TestIsDueToday(t *testing.T) {
	deadline := date(2025, time.March, 1)
	m := model.Milestone{Deadline: &deadline, Status: model.StatusCompleted}

	// Due-today is independent of status.
	if !IsDueToday(m, date(2025, time.March, 1)) {
		t.Fatal("expected due today on the deadline date")
	}
	if IsDueToday(m, date(2025, time.March, 2)) {
		t.Fatal("not due today the day after")
	}
	if IsDueToday(model.Milestone{}, date(2025, time.March, 1)) {
		t.Fatal("milestone without deadline is never due today")
	}
}

func TestDLabel(t *testing.T) {
	anchor := date(2025, time.March, 1)

	cases := []struct {
		offsetDays int
		want       string
	}{
		{-21, "D-21"},
		{-16, "D-16"},
		{-1, "D-1"},
		{0, "D-Day"},
		{1, "D+1"},
		{5, "D+5"},
	}
	for _, tc := range cases {
		deadline := anchor.AddDate(0, 0, tc.offsetDays)
		if got := DLabel(&deadline, &anchor); got != tc.want {
			t.Fatalf("offset %d: expected %q, got %q", tc.offsetDays, tc.want, got)
		}
	}

	if got := DLabel(nil, &anchor); got != "" {
		t.Fatalf("expected empty label without deadline, got %q", got)
	}
	if got := DLabel(&anchor, nil); got != "" {
		t.Fatalf("expected empty label without anchor, got %q", got)
	}
}

func TestUrgencyTiers(t *testing.T) {
	now := date(2025, time.March, 1)

	cases := []struct {
		daysOut int
		want    string
	}{
		{-1, TierPast},
		{0, TierCritical},
		{3, TierCritical},
		{4, TierHigh},
		{7, TierHigh},
		{8, TierMedium},
		{14, TierMedium},
		{15, TierLow},
		{90, TierLow},
	}
	for _, tc := range cases {
		anchor := now.AddDate(0, 0, tc.daysOut)
		if got := UrgencyTier(&anchor, now); got != tc.want {
			t.Fatalf("%d days out: expected %q, got %q", tc.daysOut, tc.want, got)
		}
	}

	if got := UrgencyTier(nil, now); got != TierNone {
		t.Fatalf("expected none without anchor, got %q", got)
	}
}

func TestCountdownLabel(t *testing.T) {
	now := date(2025, time.March, 1)

	anchor := now
	if got := CountdownLabel(&anchor, now); got != "D-Day!" {
		t.Fatalf("expected D-Day! on departure day, got %q", got)
	}

	anchor = now.AddDate(0, 0, 4)
	if got := CountdownLabel(&anchor, now); got != "D-4" {
		t.Fatalf("expected D-4, got %q", got)
	}

	anchor = now.AddDate(0, 0, -2)
	if got := CountdownLabel(&anchor, now); got != "" {
		t.Fatalf("expected no badge after departure, got %q", got)
	}
	if got := CountdownLabel(nil, now); got != "" {
		t.Fatalf("expected no badge without anchor, got %q", got)
	}
}
