package services

import (
	"context"
	"errors"
	"testing"

	"github.com/spksaw/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStatsRepository is a mock implementation of UserStatsRepository and SchoolStatsRepository
type mockStatsRepository struct {
	count         int
	countErr      error
	byRole        map[models.Role]int
	firstByRole   *models.User
	withPrincipal int
}

func (m *mockStatsRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func (m *mockStatsRepository) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	return m.byRole, nil
}

func (m *mockStatsRepository) GetFirstByRole(ctx context.Context, role models.Role) (*models.User, error) {
	if m.firstByRole == nil {
		return nil, models.ErrNotFound
	}
	return m.firstByRole, nil
}

func (m *mockStatsRepository) CountWithPrincipal(ctx context.Context) (int, error) {
	return m.withPrincipal, nil
}

func TestSetupCheckService_Check(t *testing.T) {
	superAdmin := &models.User{ID: 1, Email: "superadmin@spksaw.com", Role: models.RoleSuperAdmin, PasswordHash: hashPassword(t, DefaultSeedPassword)}
	changedPassword := &models.User{ID: 1, Email: "superadmin@spksaw.com", Role: models.RoleSuperAdmin, PasswordHash: hashPassword(t, "changed-password")}

	tests := []struct {
		name             string
		users            *mockStatsRepository
		schools          *mockStatsRepository
		secret           string
		ttl              int
		expectedOK       bool
		expectedPassword bool
		expectedProblems int
	}{
		{
			name:             "seeded database",
			users:            &mockStatsRepository{count: 27, byRole: map[models.Role]int{models.RoleSuperAdmin: 1}, firstByRole: superAdmin},
			schools:          &mockStatsRepository{count: 5, withPrincipal: 5},
			secret:           "secret",
			ttl:              60,
			expectedOK:       true,
			expectedPassword: true,
		},
		{
			name:             "password changed is not a problem",
			users:            &mockStatsRepository{count: 27, byRole: map[models.Role]int{}, firstByRole: changedPassword},
			schools:          &mockStatsRepository{count: 5},
			secret:           "secret",
			ttl:              60,
			expectedOK:       true,
			expectedPassword: false,
		},
		{
			name:             "empty database and missing secret",
			users:            &mockStatsRepository{byRole: map[models.Role]int{}},
			schools:          &mockStatsRepository{},
			secret:           "",
			ttl:              0,
			expectedOK:       false,
			expectedProblems: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSetupCheckService(tt.users, tt.schools, tt.secret, tt.ttl)

			report, err := svc.Check(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, report.OK())
			assert.Equal(t, tt.expectedPassword, report.SuperAdminPasswordOK)
			assert.Len(t, report.Problems, tt.expectedProblems)
		})
	}
}

func TestSetupCheckService_Check_QueryError(t *testing.T) {
	svc := NewSetupCheckService(
		&mockStatsRepository{},
		&mockStatsRepository{countErr: errors.New("database error")},
		"secret", 60,
	)

	report, err := svc.Check(context.Background())

	assert.Error(t, err)
	assert.Nil(t, report)
}
