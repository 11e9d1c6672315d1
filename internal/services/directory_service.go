package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spksaw/backend/internal/models"
	"go.uber.org/zap"
)

// DirectorySchoolRepository is the interface that wraps read access to schools for the directory
type DirectorySchoolRepository interface {
	SchoolRepository
	// Method List retrieves schools matching "filter" ordered by name.
	//
	// Empty filter fields are ignored. If no school matches, an empty slice is returned.
	List(ctx context.Context, filter models.SchoolFilter) ([]models.School, error)
}

// DirectoryUserRepository is the interface that wraps read access to school members for the directory
type DirectoryUserRepository interface {
	UserRepository
	// Method ListBySchool retrieves users of school "schoolID" matching "filter" ordered by ID.
	ListBySchool(ctx context.Context, schoolID int, filter models.UserFilter) ([]models.User, error)
}

// UserListQuery holds the raw query parameters of a school member listing
type UserListQuery struct {
	Role   string `json:"role"`
	Active string `json:"active"`
}

// Validate checks role and active values; both are optional
func (q UserListQuery) Validate() error {
	roles := make([]any, 0, len(models.Roles))
	for _, role := range models.Roles {
		roles = append(roles, string(role))
	}

	return validation.ValidateStruct(&q,
		validation.Field(&q.Role, validation.In(roles...).Error("Role tidak valid")),
		validation.Field(&q.Active, validation.In("true", "false", "1", "0").Error("Nilai active harus true atau false")),
	)
}

// directoryService implements DirectoryService
type directoryService struct {
	schoolRepo DirectorySchoolRepository
	userRepo   DirectoryUserRepository
	logger     *zap.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(schoolRepo DirectorySchoolRepository, userRepo DirectoryUserRepository, logger *zap.Logger) *directoryService {
	return &directoryService{
		schoolRepo: schoolRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// ListSchools returns schools matching the filter
func (s *directoryService) ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.School, error) {
	return s.schoolRepo.List(ctx, filter)
}

// GetSchool returns a school together with its principal
func (s *directoryService) GetSchool(ctx context.Context, schoolID int) (*models.SchoolDetail, error) {
	school, err := s.schoolRepo.GetByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	detail := &models.SchoolDetail{School: *school}
	if school.PrincipalID == nil {
		return detail, nil
	}

	principal, err := s.userRepo.GetByID(ctx, *school.PrincipalID)
	if errors.Is(err, models.ErrNotFound) {
		s.logger.Warn("school references missing principal", zap.Int("schoolId", schoolID), zap.Int("principalId", *school.PrincipalID))
		return detail, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	profile := models.NewUserProfile(principal, nil)
	detail.Principal = &profile
	return detail, nil
}

// ListSchoolUsers returns the members of a school; the school must exist
func (s *directoryService) ListSchoolUsers(ctx context.Context, schoolID int, query UserListQuery) ([]models.User, error) {
	if err := query.Validate(); err != nil {
		return nil, newValidationError(err)
	}

	if _, err := s.schoolRepo.GetByID(ctx, schoolID); err != nil {
		return nil, err
	}

	filter := models.UserFilter{Role: models.Role(query.Role)}
	if query.Active != "" {
		active, err := strconv.ParseBool(query.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to parse active flag: %w", err)
		}
		filter.Active = &active
	}

	return s.userRepo.ListBySchool(ctx, schoolID, filter)
}
