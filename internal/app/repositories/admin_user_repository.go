package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placement/studentms/internal/app/models"
	"github.com/placement/studentms/internal/pkg/apperrors"
	"github.com/placement/studentms/internal/pkg/dberrors"
)

// AdminUserRepository handles database operations for admin credentials
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{
		db: db,
	}
}

// Create inserts a new admin credential row. Unique violations are translated
// per constraint so the service reports the right duplicate kind.
func (r *AdminUserRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (username, password, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		admin.Username, admin.Password, admin.Email, admin.Role,
	).Scan(&admin.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admin_users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "admin_users_email_key") {
			return apperrors.ErrAdminEmailExists
		}
		return fmt.Errorf("error creating admin user: %w", err)
	}

	return nil
}

// GetByUsername retrieves an admin by exact username match
func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `SELECT id, username, password, email, role FROM admin_users WHERE username = $1`

	var admin models.AdminUser
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.Email,
		&admin.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return &admin, nil
}

// UsernameExists checks if an admin with the given username exists
func (r *AdminUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks if an admin with the given email exists
func (r *AdminUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin email existence: %w", err)
	}
	return exists, nil
}
