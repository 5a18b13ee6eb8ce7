package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/repositories"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// CreateDefaultData ensures a default mock administrator exists so a fresh
// deployment has an account that can mint tokens and manage the catalog.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	admin := &models.User{
		Email:     "admin@campusreg.local",
		FirstName: "Default",
		LastName:  "Administrator",
		Role:      models.RoleAdministrator,
		IsMock:    true,
	}

	err := userRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", admin.Email).Msg("default administrator already present")
			return nil
		}
		lgr.Error().Err(err).Msg("failed to seed default administrator")
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("default administrator created")
	return nil
}
