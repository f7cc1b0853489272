package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/app/repositories"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
	"github.com/mgdelacruz/regisys/internal/pkg/auth"
)

// Bootstrap admin credentials; the password is expected to be rotated on
// first login in any real deployment.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData creates the bootstrap admin account if it doesn't exist,
// so a fresh database is immediately usable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil // admin already present
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		FullName: "System Administrator",
		Username: defaultAdminUsername,
		Password: hash,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.CreateManual(ctx, admin); err != nil {
		// Lost a race with another instance doing the same seed
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Created default admin account")
	return nil
}
