package schedule

import (
	"testing"

	"relotrack/internal/model"
)

func strPtr(s string) *string { return &s }

func TestMatchesSearchByName(t *testing.T) {
	client := model.Client{Name: "John Smith"}

	if !Matches(client, nil, "john", FilterAll) {
		t.Fatal("expected case-insensitive name match")
	}
	if !Matches(client, nil, "Smi", FilterAll) {
		t.Fatal("expected substring name match")
	}
	if Matches(client, nil, "doe", FilterAll) {
		t.Fatal("unexpected match")
	}
}

func TestMatchesSearchByPhone(t *testing.T) {
	client := model.Client{Name: "John Smith", Phone: strPtr("+971 50 123 4567")}
	if !Matches(client, nil, "50 123", FilterAll) {
		t.Fatal("expected phone substring match")
	}

	// Absent phone never matches a non-empty search that misses the name.
	noPhone := model.Client{Name: "John Smith"}
	if Matches(noPhone, nil, "4567", FilterAll) {
		t.Fatal("nil phone must not match")
	}
}

func TestMatchesStatusFilters(t *testing.T) {
	client := model.Client{Name: "Amira"}

	delayed := milestonesWith(2, 1, 3)
	done := milestonesWith(4, 0, 0)
	inProgress := milestonesWith(1, 0, 5)

	if !Matches(client, delayed, "", FilterDelayed) {
		t.Fatal("expected delayed filter match")
	}
	if Matches(client, inProgress, "", FilterDelayed) {
		t.Fatal("no delayed milestones, should not match delayed filter")
	}

	if !Matches(client, done, "", FilterCompleted) {
		t.Fatal("expected completed filter match")
	}
	if Matches(client, inProgress, "", FilterCompleted) {
		t.Fatal("unfinished set should not match completed filter")
	}

	if !Matches(client, inProgress, "", FilterInProgress) {
		t.Fatal("expected in-progress match")
	}
	if Matches(client, done, "", FilterInProgress) {
		t.Fatal("completed set should not match in-progress")
	}
	if Matches(client, delayed, "", FilterInProgress) {
		t.Fatal("delayed set should not match in-progress")
	}
}

func TestMatchesZeroMilestoneClient(t *testing.T) {
	client := model.Client{Name: "Fresh Client"}

	if Matches(client, nil, "", FilterCompleted) {
		t.Fatal("zero-milestone client must not classify as completed")
	}
	if !Matches(client, nil, "", FilterInProgress) {
		t.Fatal("zero-milestone client belongs to in-progress")
	}
	if Matches(client, nil, "", FilterDelayed) {
		t.Fatal("zero-milestone client has no delays")
	}
}

func TestMatchesCombinesSearchAndStatus(t *testing.T) {
	client := model.Client{Name: "Amira"}
	delayed := milestonesWith(0, 1, 2)

	if Matches(client, delayed, "john", FilterDelayed) {
		t.Fatal("status match must not override a failed text match")
	}
	if !Matches(client, delayed, "ami", FilterDelayed) {
		t.Fatal("expected combined match")
	}
}
