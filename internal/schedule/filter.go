package schedule

import (
	"strings"

	"relotrack/internal/model"
)

// Status filter selector values for client listings.
const (
	FilterAll        = "all"
	FilterInProgress = "in-progress"
	FilterDelayed    = "delayed"
	FilterCompleted  = "completed"
)

// Matches implements the dashboard filter predicate: a case-insensitive
// substring match on the client name or phone, combined with a status filter
// over the client's milestone set.
//
// A client with zero milestones is treated as in-progress: it never matches
// the completed filter (AllCompleted requires at least one milestone) and is
// not excluded from in-progress.
func Matches(client model.Client, milestones []model.Milestone, search, statusFilter string) bool {
	if !matchesSearch(client, search) {
		return false
	}

	switch statusFilter {
	case "", FilterAll:
		return true
	case FilterDelayed:
		return AnyDelayed(milestones)
	case FilterCompleted:
		return AllCompleted(milestones)
	case FilterInProgress:
		return !AnyDelayed(milestones) && !AllCompleted(milestones)
	default:
		return true
	}
}

func matchesSearch(client model.Client, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(client.Name), needle) {
		return true
	}
	if client.Phone != nil && strings.Contains(strings.ToLower(*client.Phone), needle) {
		return true
	}
	return false
}
