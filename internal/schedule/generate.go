package schedule

import (
	"time"

	"relotrack/internal/model"
)

// Generate expands an anchor date and a rule table into concrete milestones,
// one per rule in table order, with deadline = anchor + offset days. Name and
// owner are copied from the rule. Every milestone starts pending with no
// completed date.
//
// Generation is meant to run exactly once per client, inside the creation
// transaction; it is not idempotent and callers must not re-invoke it for a
// client that already has milestones.
func Generate(anchor time.Time, rules []OffsetRule) ([]model.Milestone, error) {
	if anchor.IsZero() {
		return nil, ErrMissingAnchor
	}

	base := TruncateDate(anchor)
	milestones := make([]model.Milestone, 0, len(rules))
	for _, rule := range rules {
		deadline := base.AddDate(0, 0, rule.OffsetDays)
		milestones = append(milestones, model.Milestone{
			Name:     rule.Name,
			Deadline: &deadline,
			Owner:    rule.Owner,
			Status:   model.StatusPending,
		})
	}
	return milestones, nil
}
