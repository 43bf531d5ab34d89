package schedule

import (
	"errors"
	"testing"
	"time"

	"relotrack/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateMissingAnchor(t *testing.T) {
	_, err := Generate(time.Time{}, MilestoneOffsets)
	if !errors.Is(err, ErrMissingAnchor) {
		t.Fatalf("expected ErrMissingAnchor, got %v", err)
	}
}

func TestGenerateFullTable(t *testing.T) {
	anchor := date(2025, time.March, 1)
	milestones, err := Generate(anchor, MilestoneOffsets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(milestones) != len(MilestoneOffsets) {
		t.Fatalf("expected %d milestones, got %d", len(MilestoneOffsets), len(milestones))
	}

	for i, rule := range MilestoneOffsets {
		m := milestones[i]
		if m.Name != rule.Name {
			t.Fatalf("milestone %d: expected name %q, got %q", i, rule.Name, m.Name)
		}
		if m.Owner != rule.Owner {
			t.Fatalf("milestone %d: expected owner %q, got %q", i, rule.Owner, m.Owner)
		}
		if m.Status != model.StatusPending {
			t.Fatalf("milestone %d: expected pending, got %q", i, m.Status)
		}
		if m.CompletedDate != nil {
			t.Fatalf("milestone %d: expected nil completed date", i)
		}
		want := anchor.AddDate(0, 0, rule.OffsetDays)
		if m.Deadline == nil || !m.Deadline.Equal(want) {
			t.Fatalf("milestone %d: expected deadline %s, got %v", i, want, m.Deadline)
		}
	}
}

func TestGenerateResidenceVisaScenario(t *testing.T) {
	anchor := date(2025, time.March, 1)
	milestones, err := Generate(anchor, MilestoneOffsets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var visa *model.Milestone
	for i := range milestones {
		if milestones[i].Name == "Residence Visa Arrived" {
			visa = &milestones[i]
			break
		}
	}
	if visa == nil {
		t.Fatal("Residence Visa Arrived not generated")
	}
	if want := date(2025, time.February, 13); !visa.Deadline.Equal(want) {
		t.Fatalf("expected deadline %s, got %s", want, visa.Deadline)
	}
	if got := DLabel(visa.Deadline, &anchor); got != "D-16" {
		t.Fatalf("expected label D-16, got %q", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	anchor := date(2026, time.January, 15)
	first, err := Generate(anchor, MilestoneOffsets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Generate(anchor, MilestoneOffsets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i].Name != second[i].Name ||
			first[i].Owner != second[i].Owner ||
			!first[i].Deadline.Equal(*second[i].Deadline) {
			t.Fatalf("generation not deterministic at index %d", i)
		}
	}
}

func TestGenerateTruncatesAnchorTime(t *testing.T) {
	// An anchor carrying a time-of-day must produce the same deadlines as the
	// bare date.
	noisy := time.Date(2025, time.March, 1, 23, 45, 9, 0, time.FixedZone("GST", 4*3600))
	milestones, err := Generate(noisy, MilestoneOffsets[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := date(2025, time.February, 8) // -21 days
	if !milestones[0].Deadline.Equal(want) {
		t.Fatalf("expected deadline %s, got %s", want, milestones[0].Deadline)
	}
}

func TestOffsetTableNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range MilestoneOffsets {
		if seen[rule.Name] {
			t.Fatalf("duplicate rule name %q", rule.Name)
		}
		seen[rule.Name] = true
	}
}
