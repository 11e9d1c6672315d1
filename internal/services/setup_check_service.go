package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/spksaw/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSeedPassword is the password of every seeded account
const DefaultSeedPassword = "password123"

// UserStatsRepository is the interface that wraps aggregate queries over users
type UserStatsRepository interface {
	// Method Count returns the number of users.
	Count(ctx context.Context) (int, error)
	// Method CountByRole returns the number of users per role. Roles without users are absent from the map.
	CountByRole(ctx context.Context) (map[models.Role]int, error)
	// Method GetFirstByRole retrieves the user with the lowest ID having "role".
	//
	// If no such user exists, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetFirstByRole(ctx context.Context, role models.Role) (*models.User, error)
}

// SchoolStatsRepository is the interface that wraps aggregate queries over schools
type SchoolStatsRepository interface {
	// Method Count returns the number of schools.
	Count(ctx context.Context) (int, error)
	// Method CountWithPrincipal returns the number of schools with a principal assigned.
	CountWithPrincipal(ctx context.Context) (int, error)
}

// SetupReport is the outcome of a setup check
type SetupReport struct {
	Schools              int
	Users                int
	UsersByRole          map[models.Role]int
	SuperAdmin           *models.User
	SuperAdminPasswordOK bool
	SampleAdmin          *models.User
	SchoolsWithPrincipal int
	JWTSecretSet         bool
	JWTTTLMinutes        int
	Problems             []string
}

// OK reports whether the check found no problems
func (r *SetupReport) OK() bool {
	return len(r.Problems) == 0
}

// setupCheckService implements the auth setup diagnostic
type setupCheckService struct {
	userRepo      UserStatsRepository
	schoolRepo    SchoolStatsRepository
	jwtSecretSet  bool
	jwtTTLMinutes int
}

// NewSetupCheckService creates a new setup check service
func NewSetupCheckService(userRepo UserStatsRepository, schoolRepo SchoolStatsRepository, jwtSecret string, jwtTTLMinutes int) *setupCheckService {
	return &setupCheckService{
		userRepo:      userRepo,
		schoolRepo:    schoolRepo,
		jwtSecretSet:  jwtSecret != "",
		jwtTTLMinutes: jwtTTLMinutes,
	}
}

// Check collects the report. Missing data is reported as a problem, query failures as an error.
func (s *setupCheckService) Check(ctx context.Context) (*SetupReport, error) {
	report := &SetupReport{
		JWTSecretSet:  s.jwtSecretSet,
		JWTTTLMinutes: s.jwtTTLMinutes,
	}

	var err error
	if report.Schools, err = s.schoolRepo.Count(ctx); err != nil {
		return nil, err
	}
	if report.Schools == 0 {
		report.Problems = append(report.Problems, "no schools found, run the seeder")
	}

	if report.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if report.Users == 0 {
		report.Problems = append(report.Problems, "no users found, run the seeder")
	}

	if report.UsersByRole, err = s.userRepo.CountByRole(ctx); err != nil {
		return nil, err
	}

	superAdmin, err := s.userRepo.GetFirstByRole(ctx, models.RoleSuperAdmin)
	switch {
	case errors.Is(err, models.ErrNotFound):
		report.Problems = append(report.Problems, "no super admin found")
	case err != nil:
		return nil, err
	default:
		report.SuperAdmin = superAdmin
		report.SuperAdminPasswordOK = bcrypt.CompareHashAndPassword([]byte(superAdmin.PasswordHash), []byte(DefaultSeedPassword)) == nil
	}

	sampleAdmin, err := s.userRepo.GetFirstByRole(ctx, models.RoleAdmin)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	report.SampleAdmin = sampleAdmin

	if report.SchoolsWithPrincipal, err = s.schoolRepo.CountWithPrincipal(ctx); err != nil {
		return nil, err
	}

	if !report.JWTSecretSet {
		report.Problems = append(report.Problems, "JWT secret is not configured")
	}
	if report.JWTTTLMinutes <= 0 {
		report.Problems = append(report.Problems, fmt.Sprintf("JWT TTL must be positive, got %d", report.JWTTTLMinutes))
	}

	return report, nil
}
