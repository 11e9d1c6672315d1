package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spksaw/backend/internal/auth/token"
	"github.com/spksaw/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method GetByEmail retrieves a user by exact email.
	//
	// "email" parameter is compared case-sensitively.
	//
	// If user with such email does not exist, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// "userID" parameter is used to retrieve a user by ID.
	//
	// If user with such ID does not exist, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
}

// SchoolRepository is the interface that wraps methods for School table data access
type SchoolRepository interface {
	// Method GetByID retrieves a school by ID.
	//
	// "schoolID" parameter is used to retrieve a school by ID.
	//
	// If school with such ID does not exist, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, schoolID int) (*models.School, error)
}

// authService implements AuthService
type authService struct {
	userRepo   UserRepository
	schoolRepo SchoolRepository
	authority  token.Authority
	tokenTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo UserRepository,
	schoolRepo SchoolRepository,
	authority token.Authority,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:   userRepo,
		schoolRepo: schoolRepo,
		authority:  authority,
		tokenTTL:   tokenTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Login validates the credentials and issues a session token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, newValidationError(err)
	}

	user, err := s.validateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.Int("userId", user.ID), zap.String("role", string(user.Role)))
	return s.issue(ctx, user, s.tokenTTL)
}

// validateCredentials looks the user up and checks activity and password, in that order
func (s *authService) validateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return user, nil
}

// Refresh exchanges a valid token for a new one that expires strictly later
func (s *authService) Refresh(ctx context.Context, tokenString string) (*models.TokenResponse, error) {
	claims, err := s.authority.Verify(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	// Role and school are re-read so changes take effect on refresh
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("token subject no longer exists: %w", token.ErrInvalidToken)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	// Expiries have second precision, so a refresh within the same second as the
	// original issue would otherwise produce an identical exp
	ttl := s.tokenTTL
	if minTTL := claims.ExpiresAt.Sub(s.now()) + time.Second; ttl < minTTL {
		ttl = minTTL
	}

	resp, err := s.issue(ctx, user, ttl)
	if err != nil {
		return nil, err
	}

	if err := s.authority.Revoke(ctx, tokenString); err != nil {
		return nil, fmt.Errorf("failed to revoke refreshed token: %w", err)
	}

	return resp, nil
}

// Logout revokes the token until its original expiry
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	if err := s.authority.Revoke(ctx, tokenString); err != nil {
		return err
	}
	return nil
}

// Me returns the token subject with its school relation
func (s *authService) Me(ctx context.Context, userID int) (*models.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	school, err := s.loadSchool(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.UserDetail{User: *user, School: school}, nil
}

// issue signs a token for user and builds the login response
func (s *authService) issue(ctx context.Context, user *models.User, ttl time.Duration) (*models.TokenResponse, error) {
	tok, err := s.authority.Issue(ctx, token.Claims{
		UserID:   user.ID,
		Role:     string(user.Role),
		SchoolID: user.SchoolID,
	}, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	school, err := s.loadSchool(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		User:      models.NewUserProfile(user, school),
		Token:     tok.Value,
		TokenType: models.TokenTypeBearer,
		ExpiresIn: int(s.tokenTTL / time.Second),
	}, nil
}

// loadSchool returns the user's school, or nil when the user has none
func (s *authService) loadSchool(ctx context.Context, user *models.User) (*models.School, error) {
	if user.SchoolID == nil {
		return nil, nil
	}

	school, err := s.schoolRepo.GetByID(ctx, *user.SchoolID)
	if errors.Is(err, models.ErrNotFound) {
		s.logger.Warn("user references missing school", zap.Int("userId", user.ID), zap.Int("schoolId", *user.SchoolID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get school: %w", err)
	}

	return school, nil
}
