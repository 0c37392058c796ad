package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/placement/studentms/internal/app/models"
	"github.com/placement/studentms/internal/config"
	"github.com/placement/studentms/internal/db"
	"github.com/placement/studentms/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@studentms.local"
)

// CreateDefaultAdmin creates the default admin credential if none exists yet.
// The check and the insert run in one transaction so concurrent startups
// cannot race each other into a duplicate. The stored form follows the
// configured password scheme.
func CreateDefaultAdmin(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	_, encoder := auth.ForScheme(cfg.Auth.PasswordScheme)
	password, err := encoder.Encode(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error encoding default admin password")
		return err
	}

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1)",
			defaultAdminUsername).Scan(&exists)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking if default admin exists")
			return err
		}

		if exists {
			lgr.Debug().Msg("Default admin already exists, skipping creation")
			return nil
		}

		var adminID int64
		err = tx.QueryRow(ctx,
			`INSERT INTO admin_users (username, password, email, role)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			defaultAdminUsername, password, defaultAdminEmail, models.RoleAdmin).Scan(&adminID)
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin")
			return err
		}

		lgr.Info().Int64("adminID", adminID).Msg("Default admin created")
		return nil
	})
}
