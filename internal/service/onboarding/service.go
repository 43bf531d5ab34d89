package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	mqcontracts "relotrack/contracts/mq"
	"relotrack/internal/model"
	"relotrack/internal/repository"
	"relotrack/internal/schedule"
	"relotrack/pkg/logger"
	"relotrack/pkg/metrics"
	"relotrack/pkg/mq"
	"relotrack/pkg/trace"
)

var ErrNameRequired = errors.New("client name is required")

// Service drives the onboarding workflow: client creation with one-shot
// schedule generation, milestone status transitions with event fan-out, and
// read-side views with all derived fields recomputed per request.
type Service struct {
	clientRepo    *repository.ClientRepository
	milestoneRepo *repository.MilestoneRepository
	profileRepo   *repository.ProfileRepository
	publisher     *mq.Publisher
	logger        *zap.Logger
}

func NewService(
	clientRepo *repository.ClientRepository,
	milestoneRepo *repository.MilestoneRepository,
	profileRepo *repository.ProfileRepository,
	publisher *mq.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		clientRepo:    clientRepo,
		milestoneRepo: milestoneRepo,
		profileRepo:   profileRepo,
		publisher:     publisher,
		logger:        log,
	}
}

// CreateClientInput carries the add-client form fields. DepartureDate is the
// anchor and is mandatory; everything else is optional.
type CreateClientInput struct {
	Name          string
	Phone         *string
	CoordinatorID *int
	ArrivalDate   *time.Time
	DepartureDate *time.Time
}

// CreateClient inserts the client and its generated milestone schedule in a
// single transaction. Generation runs exactly once per client: this is the
// only call site, so a client can never receive a second schedule.
func (s *Service) CreateClient(ctx context.Context, input CreateClientInput) (*ClientView, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.DepartureDate == nil {
		return nil, schedule.ErrMissingAnchor
	}

	milestones, err := schedule.Generate(*input.DepartureDate, schedule.MilestoneOffsets)
	if err != nil {
		return nil, err
	}

	client := &model.Client{
		Name:          input.Name,
		Phone:         input.Phone,
		CoordinatorID: input.CoordinatorID,
		ArrivalDate:   input.ArrivalDate,
		DepartureDate: input.DepartureDate,
	}

	tx, err := s.clientRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin client creation: %w", err)
	}
	defer tx.Rollback(ctx)

	clientID, err := s.clientRepo.InsertTx(ctx, tx, client)
	if err != nil {
		return nil, err
	}
	if err := s.milestoneRepo.InsertBatchTx(ctx, tx, clientID, milestones); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit client creation: %w", err)
	}

	metrics.IncrementScheduleGeneration()
	logger.WithTrace(ctx, s.logger).Info("Client created with generated schedule",
		zap.Int("client_id", clientID),
		zap.Int("milestone_count", len(milestones)),
	)

	return s.GetClient(ctx, clientID, time.Now())
}

// DeleteClient removes the client and, via the storage cascade, its milestones.
func (s *Service) DeleteClient(ctx context.Context, id int) error {
	return s.clientRepo.Delete(ctx, id)
}

// ChangeMilestoneStatus runs the state machine over the stored milestone,
// persists the result, and publishes the change event. The publish is
// best-effort: a broker failure is logged and counted but the transition
// stands.
func (s *Service) ChangeMilestoneStatus(ctx context.Context, milestoneID int, newStatus string, observed time.Time) (*MilestoneView, error) {
	m, err := s.milestoneRepo.FindByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}

	updated, change, err := schedule.Transition(*m, newStatus, observed)
	if err != nil {
		return nil, err
	}

	if err := s.milestoneRepo.UpdateStatus(ctx, updated.ID, updated.Status, updated.CompletedDate); err != nil {
		return nil, err
	}
	metrics.IncrementMilestoneTransition(updated.Status)

	payload := mqcontracts.MilestoneStatusChangedPayload{
		ClientID:    change.ClientID,
		MilestoneID: change.MilestoneID,
		Name:        updated.Name,
		NewStatus:   change.NewStatus,
		OccurredAt:  change.OccurredAt,
		TraceID:     trace.FromContext(ctx),
	}
	if err := s.publisher.Publish(mqcontracts.RoutingKeyMilestoneStatusChanged, payload); err != nil {
		logger.WithTrace(ctx, s.logger).Error("Failed to publish milestone.status_changed, transition stands",
			zap.Int("milestone_id", updated.ID),
			zap.String("new_status", updated.Status),
			zap.Error(err),
		)
	}

	var anchor *time.Time
	if client, err := s.clientRepo.FindByID(ctx, updated.ClientID); err == nil {
		anchor = client.DepartureDate
	}
	view := newMilestoneView(updated, anchor, observed)
	return &view, nil
}

// ListClients returns the filtered client list with milestones, rollup stats
// and urgency attached, in departure-date order.
func (s *Service) ListClients(ctx context.Context, search, statusFilter string, observed time.Time) ([]ClientView, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	milestones, err := s.milestoneRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byClient := make(map[int][]model.Milestone)
	for _, m := range milestones {
		byClient[m.ClientID] = append(byClient[m.ClientID], m)
	}

	coordinators := s.coordinatorIndex(ctx)

	views := []ClientView{}
	for _, c := range clients {
		ms := byClient[c.ID]
		if !schedule.Matches(c, ms, search, statusFilter) {
			continue
		}
		views = append(views, newClientView(c, ms, coordinators, observed))
	}
	return views, nil
}

// GetClient returns one client's full detail view.
func (s *Service) GetClient(ctx context.Context, id int, observed time.Time) (*ClientView, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	milestones, err := s.milestoneRepo.FindByClientID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := newClientView(*client, milestones, s.coordinatorIndex(ctx), observed)
	return &view, nil
}

// DashboardStats aggregates milestone counts across every client.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	milestones, err := s.milestoneRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rollup := schedule.Rollup(milestones)
	return &DashboardStats{
		TotalClients:   len(clients),
		Completed:      rollup.Completed,
		Pending:        rollup.Pending,
		Delayed:        rollup.Delayed,
		CompletionRate: rollup.CompletionPercent,
	}, nil
}

// coordinatorIndex loads profiles for name lookup. Coordinators are a weak
// reference; a lookup failure only degrades the display, it never fails the
// request.
func (s *Service) coordinatorIndex(ctx context.Context) map[int]model.Profile {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to load coordinators, rendering without them", zap.Error(err))
		return nil
	}
	index := make(map[int]model.Profile, len(profiles))
	for _, p := range profiles {
		index[p.ID] = p
	}
	return index
}
