package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/campushq/recruithub/internal/app/models"
	appRepos "github.com/campushq/recruithub/internal/app/repositories"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
)

// CreateDefaultData creates the default admin account and a demo college if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	collegeRepo := appRepos.NewCollegeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error // Collect errors without stopping the process

	// --- Default Admin User --- //
	exists, err := userRepo.EmailExists(ctx, "admin@recruithub.io")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     "admin@recruithub.io",
				Password:  string(hashedPassword),
				FirstName: "System",
				LastName:  "Administrator",
				RoleType:  appModels.RoleAdmin,
				IsActive:  true,
			}

			if err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	// --- Demo College --- //
	demoCollege := &appModels.College{
		Name:      "Demo Institute of Technology",
		City:      "Pune",
		SpocName:  "Placement Cell",
		SpocEmail: "placements@demo-tech.edu",
	}
	if err := collegeRepo.Create(ctx, demoCollege); err != nil && !errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating demo college")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
