package schedule

import (
	"testing"

	"relotrack/internal/model"
)

func milestonesWith(completed, delayed, pending int) []model.Milestone {
	var ms []model.Milestone
	for i := 0; i < completed; i++ {
		ms = append(ms, model.Milestone{Status: model.StatusCompleted})
	}
	for i := 0; i < delayed; i++ {
		ms = append(ms, model.Milestone{Status: model.StatusDelayed})
	}
	for i := 0; i < pending; i++ {
		ms = append(ms, model.Milestone{Status: model.StatusPending})
	}
	return ms
}

func TestRollupThirteenMilestoneScenario(t *testing.T) {
	// 13 generated milestones, 5 completed, 1 delayed, rest pending.
	s := Rollup(milestonesWith(5, 1, 7))
	if s.Completed != 5 || s.Delayed != 1 || s.Pending != 7 || s.Total != 13 {
		t.Fatalf("unexpected rollup: %+v", s)
	}
	if s.CompletionPercent != 38 {
		t.Fatalf("expected 38%%, got %d%%", s.CompletionPercent)
	}
}

func TestRollupEmpty(t *testing.T) {
	s := Rollup(nil)
	if s.Total != 0 || s.Completed != 0 || s.Pending != 0 || s.Delayed != 0 {
		t.Fatalf("unexpected rollup for empty set: %+v", s)
	}
	if s.CompletionPercent != 0 {
		t.Fatalf("expected 0%% for empty set, got %d%%", s.CompletionPercent)
	}
}

func TestRollupTotalsAlwaysBalance(t *testing.T) {
	for completed := 0; completed <= 4; completed++ {
		for delayed := 0; delayed <= 4; delayed++ {
			for pending := 0; pending <= 4; pending++ {
				s := Rollup(milestonesWith(completed, delayed, pending))
				if s.Completed+s.Delayed+s.Pending != s.Total {
					t.Fatalf("totals do not balance: %+v", s)
				}
			}
		}
	}
}

func TestRollupUnknownStatusCountsAsPending(t *testing.T) {
	ms := []model.Milestone{
		{Status: model.StatusCompleted},
		{Status: "in_review"},
	}
	s := Rollup(ms)
	if s.Pending != 1 {
		t.Fatalf("expected unknown status to surface as pending, got %+v", s)
	}
	if s.CompletionPercent != 50 {
		t.Fatalf("expected 50%%, got %d%%", s.CompletionPercent)
	}
}

func TestAllCompleted(t *testing.T) {
	if AllCompleted(nil) {
		t.Fatal("a client with no milestones is not completed")
	}
	if !AllCompleted(milestonesWith(3, 0, 0)) {
		t.Fatal("expected all-completed set to report completed")
	}
	if AllCompleted(milestonesWith(3, 0, 1)) {
		t.Fatal("one pending milestone should block completion")
	}
}

func TestAnyDelayed(t *testing.T) {
	if AnyDelayed(milestonesWith(2, 0, 2)) {
		t.Fatal("no delayed milestones expected")
	}
	if !AnyDelayed(milestonesWith(0, 1, 5)) {
		t.Fatal("expected delayed detection")
	}
}
