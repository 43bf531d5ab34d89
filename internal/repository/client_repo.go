package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"relotrack/internal/model"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewClientRepository(db *pgxpool.Pool, logger *zap.Logger) *ClientRepository {
	return &ClientRepository{db: db, logger: logger}
}

// InsertTx inserts a client inside an existing transaction so its generated
// milestones land atomically with it.
func (r *ClientRepository) InsertTx(ctx context.Context, tx pgx.Tx, c *model.Client) (int, error) {
	r.logger.Debug("Inserting client",
		zap.String("name", c.Name),
	)

	query := `
        INSERT INTO clients (name, phone, coordinator_id, arrival_date, departure_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := tx.QueryRow(ctx, query,
		c.Name,
		c.Phone,
		c.CoordinatorID,
		c.ArrivalDate,
		c.DepartureDate,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert client", zap.Error(err))
		return 0, err
	}

	r.logger.Info("Client inserted successfully",
		zap.Int("client_id", c.ID),
		zap.String("name", c.Name),
	)
	return c.ID, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int) (*model.Client, error) {
	query := `
        SELECT id, name, phone, coordinator_id, arrival_date, departure_date, created_at
        FROM clients
        WHERE id = $1
    `
	var c model.Client
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.CoordinatorID,
		&c.ArrivalDate,
		&c.DepartureDate,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		r.logger.Error("Failed to find client", zap.Int("client_id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// List returns all clients ordered by departure date, soonest first. A row
// that fails to scan is logged and skipped so one bad record cannot take the
// whole listing down.
func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	query := `
        SELECT id, name, phone, coordinator_id, arrival_date, departure_date, created_at
        FROM clients
        ORDER BY departure_date ASC NULLS LAST, id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	clients := []model.Client{}
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Phone,
			&c.CoordinatorID,
			&c.ArrivalDate,
			&c.DepartureDate,
			&c.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan client row, skipping", zap.Error(err))
			continue
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("client rows: %w", err)
	}
	return clients, nil
}

// Delete removes a client; its milestones cascade via the FK constraint.
func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete client", zap.Int("client_id", id), zap.Error(err))
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	r.logger.Info("Client deleted", zap.Int("client_id", id))
	return nil
}

// Begin starts a transaction for callers composing multi-step writes.
func (r *ClientRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}
