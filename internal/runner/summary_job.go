package runner

import (
	"context"
	"time"

	"go.uber.org/zap"

	mqcontracts "relotrack/contracts/mq"
	"relotrack/internal/model"
	"relotrack/internal/repository"
	"relotrack/internal/schedule"
	"relotrack/pkg/mq"
)

// SummaryJob assembles the daily digest: milestones due today plus every
// currently delayed milestone, enriched with client contact details, and
// publishes it as a summary.daily event.
type SummaryJob struct {
	clientRepo    *repository.ClientRepository
	milestoneRepo *repository.MilestoneRepository
	publisher     *mq.Publisher
	logger        *zap.Logger
}

func NewSummaryJob(
	clientRepo *repository.ClientRepository,
	milestoneRepo *repository.MilestoneRepository,
	publisher *mq.Publisher,
	logger *zap.Logger,
) *SummaryJob {
	return &SummaryJob{
		clientRepo:    clientRepo,
		milestoneRepo: milestoneRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// Run builds and publishes the digest for the given day. The digest is
// published even when both lists are empty so downstream consumers can tell
// "nothing due" from "runner did not fire".
func (j *SummaryJob) Run(ctx context.Context, day time.Time) error {
	day = schedule.TruncateDate(day)

	dueToday, err := j.milestoneRepo.ListPendingDueOn(ctx, day)
	if err != nil {
		return err
	}
	delayed, err := j.milestoneRepo.ListDelayed(ctx)
	if err != nil {
		return err
	}

	clients := j.clientIndex(ctx)

	payload := mqcontracts.DailySummaryPayload{
		Date:              day.Format(schedule.DateLayout),
		DueToday:          len(dueToday),
		Delayed:           len(delayed),
		MilestonesDue:     j.summarize(dueToday, clients),
		MilestonesDelayed: j.summarize(delayed, clients),
	}

	if err := j.publisher.Publish(mqcontracts.RoutingKeyDailySummary, payload); err != nil {
		j.logger.Error("Failed to publish daily summary", zap.String("date", payload.Date), zap.Error(err))
		return err
	}

	j.logger.Info("Daily summary published",
		zap.String("date", payload.Date),
		zap.Int("due_today", payload.DueToday),
		zap.Int("delayed", payload.Delayed),
	)
	return nil
}

func (j *SummaryJob) clientIndex(ctx context.Context) map[int]model.Client {
	clients, err := j.clientRepo.List(ctx)
	if err != nil {
		j.logger.Warn("Failed to load clients for summary, names will be missing", zap.Error(err))
		return nil
	}
	index := make(map[int]model.Client, len(clients))
	for _, c := range clients {
		index[c.ID] = c
	}
	return index
}

func (j *SummaryJob) summarize(milestones []model.Milestone, clients map[int]model.Client) []mqcontracts.SummaryMilestone {
	out := make([]mqcontracts.SummaryMilestone, 0, len(milestones))
	for _, m := range milestones {
		entry := mqcontracts.SummaryMilestone{
			MilestoneID: m.ID,
			ClientID:    m.ClientID,
			Name:        m.Name,
			Owner:       m.Owner,
		}
		if m.Deadline != nil {
			entry.Deadline = m.Deadline.Format(schedule.DateLayout)
		}
		if c, ok := clients[m.ClientID]; ok {
			entry.ClientName = c.Name
			entry.ClientPhone = c.Phone
		}
		out = append(out, entry)
	}
	return out
}
