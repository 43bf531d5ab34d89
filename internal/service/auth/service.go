package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"relotrack/internal/model"
	"relotrack/internal/repository"
	"relotrack/pkg/rbac"
	"relotrack/pkg/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidRole        = errors.New("role must be admin or task_owner")
)

type Service struct {
	profileRepo *repository.ProfileRepository
	jwtSecret   string
	logger      *zap.Logger
}

func NewService(profileRepo *repository.ProfileRepository, jwtSecret string, log *zap.Logger) *Service {
	return &Service{profileRepo: profileRepo, jwtSecret: jwtSecret, logger: log}
}

// Register creates a profile with a bcrypt password hash. The first
// registered role decision is the caller's; defaults to task_owner.
func (s *Service) Register(ctx context.Context, email, password, fullName, role string) (*model.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = rbac.RoleTaskOwner
	}
	if role != rbac.RoleAdmin && role != rbac.RoleTaskOwner {
		return nil, ErrInvalidRole
	}

	if _, err := s.profileRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Profile registered",
		zap.Int("profile_id", profile.ID),
		zap.String("role", profile.Role),
	)
	return profile, nil
}

// Login checks the password and mints a signed token carrying the profile's
// id and role.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !util.CheckPassword(password, profile.PasswordHash) {
		s.logger.Warn("Login failed: bad password", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(profile.ID, profile.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, profile, nil
}
