package schedule

import (
	"fmt"
	"time"

	"relotrack/internal/model"
)

// Client urgency tiers, derived from how close the departure date is to the
// observation date. Never persisted; recomputed on every read.
const (
	TierNone     = "none"
	TierPast     = "past"
	TierCritical = "critical"
	TierHigh     = "high"
	TierMedium   = "medium"
	TierLow      = "low"
)

// IsOverdue reports whether a still-pending milestone's deadline has passed.
// Completed and delayed milestones are never overdue: overdue is specifically
// the "should have acted but didn't" signal.
func IsOverdue(m model.Milestone, observed time.Time) bool {
	if m.Deadline == nil || m.Status != model.StatusPending {
		return false
	}
	return TruncateDate(*m.Deadline).Before(TruncateDate(observed))
}

// IsDueToday reports whether the milestone's deadline falls on the observation
// date, regardless of status.
func IsDueToday(m model.Milestone, observed time.Time) bool {
	if m.Deadline == nil {
		return false
	}
	return TruncateDate(*m.Deadline).Equal(TruncateDate(observed))
}

// DLabel renders a deadline relative to the anchor date: "D-Day" on the anchor,
// "D-16" sixteen days before, "D+5" five days after. Empty when either date is
// missing.
func DLabel(deadline, anchor *time.Time) string {
	if deadline == nil || anchor == nil {
		return ""
	}
	diff := DaysBetween(*deadline, *anchor)
	switch {
	case diff == 0:
		return "D-Day"
	case diff < 0:
		return fmt.Sprintf("D%d", diff)
	default:
		return fmt.Sprintf("D+%d", diff)
	}
}

// DaysToAnchor returns anchor - observed in whole days, false when no anchor.
func DaysToAnchor(anchor *time.Time, observed time.Time) (int, bool) {
	if anchor == nil {
		return 0, false
	}
	return DaysBetween(*anchor, observed), true
}

// UrgencyTier classifies a client by days until departure. Rules are evaluated
// in order, first match wins.
func UrgencyTier(anchor *time.Time, observed time.Time) string {
	days, ok := DaysToAnchor(anchor, observed)
	if !ok {
		return TierNone
	}
	switch {
	case days < 0:
		return TierPast
	case days <= 3:
		return TierCritical
	case days <= 7:
		return TierHigh
	case days <= 14:
		return TierMedium
	default:
		return TierLow
	}
}

// CountdownLabel is the badge text for a client's departure countdown.
// None/past tiers render no badge by convention; day zero is the
// distinguished "D-Day!" label rather than a number.
func CountdownLabel(anchor *time.Time, observed time.Time) string {
	days, ok := DaysToAnchor(anchor, observed)
	if !ok || days < 0 {
		return ""
	}
	if days == 0 {
		return "D-Day!"
	}
	return fmt.Sprintf("D-%d", days)
}
