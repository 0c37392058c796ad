package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/placement/studentms/internal/app/models"
	"github.com/placement/studentms/internal/app/models/dto"
	"github.com/placement/studentms/internal/pkg/apperrors"
	"github.com/placement/studentms/internal/pkg/auth"
)

// AdminUserStore is the persistence contract the auth service depends on
type AdminUserStore interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService handles admin registration and credential checks
type AuthService struct {
	adminRepo AdminUserStore
	verifier  auth.PasswordVerifier
	encoder   auth.PasswordEncoder
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService. The verifier and encoder must
// belong to the same password scheme.
func NewAuthService(adminRepo AdminUserStore, verifier auth.PasswordVerifier, encoder auth.PasswordEncoder, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		verifier:  verifier,
		encoder:   encoder,
		logger:    logger,
	}
}

// Register creates a new admin credential. The username is probed before the
// email, so a simultaneous collision on both reports the username conflict.
// Every account gets the fixed ADMIN role.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AdminResponse, error) {
	s.logger.Info().Str("username", req.Username).Msg("Registering admin user")

	usernameTaken, err := s.adminRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if usernameTaken {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	emailTaken, err := s.adminRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.ErrAdminEmailExists
	}

	stored, err := s.encoder.Encode(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error encoding password: %w", err)
	}

	admin := &models.AdminUser{
		Username: req.Username,
		Password: stored,
		Email:    req.Email,
		Role:     models.RoleAdmin,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminID", admin.ID).Msg("Admin user registered")
	return toAdminResponse(admin), nil
}

// Login checks the supplied credentials against the stored ones. An unknown
// username and a mismatched password both yield an absent result rather than
// an error, so callers cannot distinguish the two cases.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error looking up admin: %w", err)
	}

	if !s.verifier.Verify(admin.Password, password) {
		return nil, nil
	}

	s.logger.Info().Str("username", username).Msg("Admin login succeeded")
	return toAdminResponse(admin), nil
}

// UsernameExists is a pure existence probe for client-side pre-validation
func (s *AuthService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.adminRepo.UsernameExists(ctx, username)
}

// toAdminResponse maps an admin entity to its API-facing view
func toAdminResponse(admin *models.AdminUser) *dto.AdminResponse {
	return &dto.AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}
}
