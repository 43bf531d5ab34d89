package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"relotrack/internal/model"
)

var ErrMilestoneNotFound = errors.New("milestone not found")

type MilestoneRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMilestoneRepository(db *pgxpool.Pool, logger *zap.Logger) *MilestoneRepository {
	return &MilestoneRepository{db: db, logger: logger}
}

// InsertBatchTx inserts a client's generated milestone set inside the client
// creation transaction.
func (r *MilestoneRepository) InsertBatchTx(ctx context.Context, tx pgx.Tx, clientID int, milestones []model.Milestone) error {
	r.logger.Debug("Inserting milestone batch",
		zap.Int("client_id", clientID),
		zap.Int("count", len(milestones)),
	)

	query := `
        INSERT INTO milestones (client_id, name, deadline, owner, status, completed_date)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	for _, m := range milestones {
		if _, err := tx.Exec(ctx, query,
			clientID,
			m.Name,
			m.Deadline,
			m.Owner,
			m.Status,
			m.CompletedDate,
		); err != nil {
			r.logger.Error("Failed to insert milestone",
				zap.Int("client_id", clientID),
				zap.String("name", m.Name),
				zap.Error(err),
			)
			return err
		}
	}

	r.logger.Info("Milestone batch inserted successfully",
		zap.Int("client_id", clientID),
		zap.Int("count", len(milestones)),
	)
	return nil
}

func (r *MilestoneRepository) FindByID(ctx context.Context, id int) (*model.Milestone, error) {
	query := `
        SELECT id, client_id, name, deadline, owner, status, completed_date
        FROM milestones
        WHERE id = $1
    `
	var m model.Milestone
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.ClientID,
		&m.Name,
		&m.Deadline,
		&m.Owner,
		&m.Status,
		&m.CompletedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMilestoneNotFound
		}
		r.logger.Error("Failed to find milestone", zap.Int("milestone_id", id), zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// FindByClientID returns a client's milestones ordered by deadline, nulls last.
func (r *MilestoneRepository) FindByClientID(ctx context.Context, clientID int) ([]model.Milestone, error) {
	query := `
        SELECT id, client_id, name, deadline, owner, status, completed_date
        FROM milestones
        WHERE client_id = $1
        ORDER BY deadline ASC NULLS LAST, id ASC
    `
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		r.logger.Error("Failed to find milestones",
			zap.Int("client_id", clientID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	return r.scanMilestones(rows)
}

// ListAll returns every milestone, for dashboard-wide aggregation.
func (r *MilestoneRepository) ListAll(ctx context.Context) ([]model.Milestone, error) {
	query := `
        SELECT id, client_id, name, deadline, owner, status, completed_date
        FROM milestones
        ORDER BY client_id ASC, deadline ASC NULLS LAST, id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list milestones", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanMilestones(rows)
}

// ListPendingDueOn returns pending milestones whose deadline falls on the
// given date, for the daily summary.
func (r *MilestoneRepository) ListPendingDueOn(ctx context.Context, day time.Time) ([]model.Milestone, error) {
	query := `
        SELECT id, client_id, name, deadline, owner, status, completed_date
        FROM milestones
        WHERE deadline = $1 AND status = $2
        ORDER BY client_id ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, day, model.StatusPending)
	if err != nil {
		r.logger.Error("Failed to list milestones due on date",
			zap.Time("day", day),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	return r.scanMilestones(rows)
}

func (r *MilestoneRepository) ListDelayed(ctx context.Context) ([]model.Milestone, error) {
	query := `
        SELECT id, client_id, name, deadline, owner, status, completed_date
        FROM milestones
        WHERE status = $1
        ORDER BY client_id ASC, deadline ASC NULLS LAST, id ASC
    `
	rows, err := r.db.Query(ctx, query, model.StatusDelayed)
	if err != nil {
		r.logger.Error("Failed to list delayed milestones", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanMilestones(rows)
}

// UpdateStatus persists a state-machine transition. The status and completed
// date always travel together so the stored row keeps the completed-date
// invariant.
func (r *MilestoneRepository) UpdateStatus(ctx context.Context, id int, status string, completedDate *time.Time) error {
	result, err := r.db.Exec(ctx, `
        UPDATE milestones
        SET status = $2, completed_date = $3
        WHERE id = $1
    `, id, status, completedDate)
	if err != nil {
		r.logger.Error("Failed to update milestone status",
			zap.Int("milestone_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrMilestoneNotFound
	}

	r.logger.Info("Milestone status updated",
		zap.Int("milestone_id", id),
		zap.String("status", status),
	)
	return nil
}

func (r *MilestoneRepository) scanMilestones(rows pgx.Rows) ([]model.Milestone, error) {
	milestones := []model.Milestone{}
	for rows.Next() {
		var m model.Milestone
		if err := rows.Scan(
			&m.ID,
			&m.ClientID,
			&m.Name,
			&m.Deadline,
			&m.Owner,
			&m.Status,
			&m.CompletedDate,
		); err != nil {
			r.logger.Error("Failed to scan milestone row, skipping", zap.Error(err))
			continue
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("milestone rows: %w", err)
	}
	return milestones, nil
}
