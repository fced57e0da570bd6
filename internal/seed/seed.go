package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/kaan/uniforum/internal/app/models"
	appRepos "github.com/kaan/uniforum/internal/app/repositories"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
	pkgAuth "github.com/kaan/uniforum/internal/pkg/auth"
)

// CreateDefaultData creates the default departments, subjects and the
// admin account if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	subjectRepo := appRepos.NewSubjectRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (departments/subjects)...")
	var finalErr error

	defaults := map[string][]string{
		"Computer Science":       {"Algorithms", "Operating Systems", "Databases"},
		"Electrical Engineering": {"Circuit Theory", "Signals and Systems"},
		"Mathematics":            {"Linear Algebra", "Calculus"},
	}

	existing, err := departmentRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	existingByName := make(map[string]int64, len(existing))
	for _, dept := range existing {
		existingByName[dept.Name] = dept.ID
	}

	for deptName, subjectNames := range defaults {
		deptID, ok := existingByName[deptName]
		if !ok {
			dept := &appModels.Department{Name: deptName}
			if err := departmentRepo.Create(ctx, dept); err != nil {
				if !errors.Is(err, apperrors.ErrConflict) {
					lgr.Error().Err(err).Str("department", deptName).Msg("Error creating department")
					finalErr = errors.Join(finalErr, err)
				}
				continue
			}
			deptID = dept.ID

			// Subjects are only seeded together with their department so
			// reruns don't duplicate them (subjects have no unique name)
			for _, subjectName := range subjectNames {
				subject := &appModels.Subject{Name: subjectName, DepartmentID: deptID}
				if err := subjectRepo.Create(ctx, subject); err != nil {
					lgr.Error().Err(err).Str("subject", subjectName).Msg("Error creating subject")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	if _, err := userRepo.GetByUsername(ctx, "admin"); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			hashed, hashErr := pkgAuth.HashPassword("admin12345")
			if hashErr != nil {
				return errors.Join(finalErr, hashErr)
			}
			admin := &appModels.User{
				Username: "admin",
				Password: hashed,
				Role:     appModels.RoleAdmin,
			}
			if createErr := userRepo.Create(ctx, admin); createErr != nil &&
				!errors.Is(createErr, apperrors.ErrUsernameAlreadyExists) {
				lgr.Error().Err(createErr).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, createErr)
			}
		} else {
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
