package onboarding

import (
	"testing"
	"time"

	"relotrack/internal/model"
	"relotrack/internal/schedule"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewMilestoneViewDerivedFields(t *testing.T) {
	anchor := day(2026, time.March, 1)
	deadline := day(2026, time.February, 13)
	observed := time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)

	m := model.Milestone{ID: 1, ClientID: 1, Name: "Residence Visa Arrived", Deadline: deadline, Status: model.StatusPending}
	view := newMilestoneView(m, anchor, observed)

	if !view.Overdue {
		t.Fatal("pending milestone past its deadline should be overdue")
	}
	if view.DueToday {
		t.Fatal("deadline is in the past, not today")
	}
	if view.DLabel != "D-16" {
		t.Fatalf("expected D-16, got %q", view.DLabel)
	}
}

func TestNewClientViewAggregates(t *testing.T) {
	anchor := day(2026, time.March, 1)
	observed := time.Date(2026, time.February, 27, 9, 0, 0, 0, time.UTC)

	coordinatorID := 5
	client := model.Client{
		ID:            1,
		Name:          "Alice Chen",
		CoordinatorID: &coordinatorID,
		DepartureDate: anchor,
	}
	milestones := []model.Milestone{
		{ID: 1, ClientID: 1, Status: model.StatusCompleted, CompletedDate: day(2026, time.February, 10)},
		{ID: 2, ClientID: 1, Status: model.StatusDelayed, Deadline: day(2026, time.February, 20)},
		{ID: 3, ClientID: 1, Status: model.StatusPending, Deadline: day(2026, time.March, 1)},
	}
	coordinators := map[int]model.Profile{
		5: {ID: 5, FullName: "Maria Santos"},
	}

	view := newClientView(client, milestones, coordinators, observed)

	if view.Stats.Completed != 1 || view.Stats.Delayed != 1 || view.Stats.Pending != 1 {
		t.Fatalf("unexpected rollup: %+v", view.Stats)
	}
	if view.Stats.CompletionPercent != 33 {
		t.Fatalf("expected 33%%, got %d", view.Stats.CompletionPercent)
	}
	if view.Urgency != schedule.TierCritical {
		t.Fatalf("2 days out should be critical, got %q", view.Urgency)
	}
	if view.Countdown != "D-2" {
		t.Fatalf("expected D-2, got %q", view.Countdown)
	}
	if view.CoordinatorName == nil || *view.CoordinatorName != "Maria Santos" {
		t.Fatalf("coordinator name not resolved: %v", view.CoordinatorName)
	}
	if view.AllCompleted {
		t.Fatal("not all milestones are completed")
	}
	if !view.AnyDelayed {
		t.Fatal("one milestone is delayed")
	}
	if len(view.Milestones) != 3 {
		t.Fatalf("expected 3 milestone views, got %d", len(view.Milestones))
	}
}

func TestNewClientViewMissingCoordinator(t *testing.T) {
	coordinatorID := 99
	client := model.Client{ID: 2, Name: "Bob", CoordinatorID: &coordinatorID}

	view := newClientView(client, nil, map[int]model.Profile{}, time.Now())
	if view.CoordinatorName != nil {
		t.Fatalf("unknown coordinator should stay nil, got %v", *view.CoordinatorName)
	}
	if view.Stats.Total != 0 {
		t.Fatalf("expected empty rollup, got %+v", view.Stats)
	}
}
