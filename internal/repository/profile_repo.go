package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"relotrack/internal/model"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	query := `
        INSERT INTO profiles (email, password_hash, full_name, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		p.Email,
		p.PasswordHash,
		p.FullName,
		p.Role,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert profile", zap.String("email", p.Email), zap.Error(err))
		return err
	}

	r.logger.Info("Profile created", zap.Int("profile_id", p.ID), zap.String("role", p.Role))
	return nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `
        SELECT id, email, password_hash, full_name, role, created_at
        FROM profiles
        WHERE email = $1
    `
	var p model.Profile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.FullName,
		&p.Role,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id int) (*model.Profile, error) {
	query := `
        SELECT id, email, password_hash, full_name, role, created_at
        FROM profiles
        WHERE id = $1
    `
	var p model.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.FullName,
		&p.Role,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all profiles, used to populate coordinator selection.
func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	query := `
        SELECT id, email, password_hash, full_name, role, created_at
        FROM profiles
        ORDER BY full_name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.PasswordHash,
			&p.FullName,
			&p.Role,
			&p.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan profile row, skipping", zap.Error(err))
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
