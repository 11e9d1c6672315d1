// Package seed fills an empty database with the demo schools and accounts
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spksaw/backend/internal/database"
	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/repositories"
	"github.com/spksaw/backend/internal/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Schools are the demo schools inserted by the seeder, in insertion order
var Schools = []models.School{
	{
		Code:     "20104001",
		Name:     "SMA Negeri 1 Banda Aceh",
		Address:  "Jl. Sultan Alauddin No. 1, Banda Aceh",
		Province: "Aceh",
		District: "Banda Aceh",
		Metadata: models.Metadata{
			"description":      "Sekolah menengah atas negeri unggulan di Banda Aceh",
			"established_year": 1963,
			"accreditation":    "A",
		},
	},
	{
		Code:     "20104002",
		Name:     "SMA Negeri 2 Banda Aceh",
		Address:  "Jl. T. Panglima Polem No. 2, Banda Aceh",
		Province: "Aceh",
		District: "Banda Aceh",
		Metadata: models.Metadata{
			"description":      "Sekolah menengah atas negeri dengan program unggulan",
			"established_year": 1975,
			"accreditation":    "A",
		},
	},
	{
		Code:     "10101001",
		Name:     "SMA Negeri 1 Jakarta Pusat",
		Address:  "Jl. Budi Kemuliaan No. 1, Jakarta Pusat",
		Province: "DKI Jakarta",
		District: "Jakarta Pusat",
		Metadata: models.Metadata{
			"description":      "Sekolah menengah atas negeri di pusat Jakarta",
			"established_year": 1950,
			"accreditation":    "A",
		},
	},
	{
		Code:     "33010001",
		Name:     "SMA Negeri 1 Semarang",
		Address:  "Jl. Taman Sari No. 1, Semarang",
		Province: "Jawa Tengah",
		District: "Semarang",
		Metadata: models.Metadata{
			"description":      "Sekolah menengah atas negeri favorit di Semarang",
			"established_year": 1952,
			"accreditation":    "A",
		},
	},
	{
		Code:     "35010001",
		Name:     "SMA Negeri 1 Surabaya",
		Address:  "Jl. Wijaya Kusuma No. 1, Surabaya",
		Province: "Jawa Timur",
		District: "Surabaya",
		Metadata: models.Metadata{
			"description":      "Sekolah menengah atas negeri terbaik di Surabaya",
			"established_year": 1947,
			"accreditation":    "A",
		},
	},
}

// staffPositions are the regular accounts created for every school
var staffPositions = []struct {
	jobTitle    string
	emailPrefix string
}{
	{jobTitle: "Wakil Kepala Kurikulum", emailPrefix: "waka.kurikulum"},
	{jobTitle: "Bendahara BOS", emailPrefix: "bendahara.bos"},
	{jobTitle: "Staff TU", emailPrefix: "staff.tu"},
}

// Result summarises a seeder run
type Result struct {
	Skipped bool
	Schools int
	Users   int
}

// Seeder inserts the demo data set
type Seeder struct {
	db     *sql.DB
	logger *zap.Logger
	cost   int
}

// NewSeeder creates a new seeder
func NewSeeder(db *sql.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
		cost:   bcrypt.DefaultCost,
	}
}

// Run seeds the database unless it already has users. All inserts share one transaction.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	existing, err := repositories.NewUserRepository(s.db, s.logger).Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		s.logger.Info("users already present, skipping seed", zap.Int("users", existing))
		return &Result{Skipped: true}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(services.DefaultSeedPassword), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	result := &Result{}
	err = database.WithTx(ctx, s.db, func(ctx context.Context, tx database.DBTX) error {
		schoolRepo := repositories.NewSchoolRepository(tx, s.logger)
		userRepo := repositories.NewUserRepository(tx, s.logger)

		schools := make([]models.School, len(Schools))
		copy(schools, Schools)
		for i := range schools {
			if err := schoolRepo.Create(ctx, &schools[i]); err != nil {
				return err
			}
			result.Schools++
		}

		create := func(user *models.User) error {
			user.PasswordHash = string(hash)
			user.IsActive = true
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}
			result.Users++
			return nil
		}

		if err := create(&models.User{
			Name:     "Super Administrator",
			Email:    "superadmin@spksaw.com",
			Role:     models.RoleSuperAdmin,
			JobTitle: ptr("System Administrator"),
		}); err != nil {
			return err
		}

		for i, school := range schools {
			n := i + 1
			schoolID := school.ID

			principal := &models.User{
				Name:     "Kepala Sekolah " + school.Name,
				Email:    fmt.Sprintf("kepala.sekolah%d@spksaw.com", n),
				Role:     models.RoleSchoolPrincipal,
				JobTitle: ptr("Kepala Sekolah"),
				SchoolID: &schoolID,
			}
			if err := create(principal); err != nil {
				return err
			}
			if err := schoolRepo.SetPrincipal(ctx, schoolID, principal.ID); err != nil {
				return err
			}

			if err := create(&models.User{
				Name:     "Admin " + school.Name,
				Email:    fmt.Sprintf("admin%d@spksaw.com", n),
				Role:     models.RoleAdmin,
				JobTitle: ptr("Administrator Sekolah"),
				SchoolID: &schoolID,
			}); err != nil {
				return err
			}

			for _, position := range staffPositions {
				if err := create(&models.User{
					Name:     position.jobTitle + " " + school.Name,
					Email:    fmt.Sprintf("%s%d@spksaw.com", position.emailPrefix, n),
					Role:     models.RoleUser,
					JobTitle: ptr(position.jobTitle),
					SchoolID: &schoolID,
				}); err != nil {
					return err
				}
			}
		}

		test := &models.User{
			Name:     "Test User",
			Email:    "test@spksaw.com",
			Role:     models.RoleUser,
			JobTitle: ptr("Test Account"),
		}
		if len(schools) > 0 {
			test.SchoolID = &schools[0].ID
		}
		return create(test)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	s.logger.Info("database seeded", zap.Int("schools", result.Schools), zap.Int("users", result.Users))
	return result, nil
}

func ptr(s string) *string {
	return &s
}
