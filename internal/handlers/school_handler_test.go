package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockDirectoryService is a mock implementation of DirectoryService
type mockDirectoryService struct {
	schools   []models.School
	detail    *models.SchoolDetail
	users     []models.User
	err       error
	gotFilter models.SchoolFilter
	gotQuery  services.UserListQuery
	gotID     int
}

func (m *mockDirectoryService) ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.School, error) {
	m.gotFilter = filter
	return m.schools, m.err
}

func (m *mockDirectoryService) GetSchool(ctx context.Context, schoolID int) (*models.SchoolDetail, error) {
	m.gotID = schoolID
	return m.detail, m.err
}

func (m *mockDirectoryService) ListSchoolUsers(ctx context.Context, schoolID int, query services.UserListQuery) ([]models.User, error) {
	m.gotID = schoolID
	m.gotQuery = query
	return m.users, m.err
}

func setupSchoolRouter(svc DirectoryService) http.Handler {
	r := chi.NewRouter()
	NewSchoolHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestSchoolHandler_ListSchools(t *testing.T) {
	svc := &mockDirectoryService{schools: []models.School{{ID: 1, Code: "SMAN1JKT"}, {ID: 2, Code: "SMAN3BDG"}}}
	router := setupSchoolRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/schools?province=Jawa+Barat&district=Bandung", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SchoolFilter{Province: "Jawa Barat", District: "Bandung"}, svc.gotFilter)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var schools []models.School
	require.NoError(t, json.Unmarshal(env.Data, &schools))
	assert.Len(t, schools, 2)
}

func TestSchoolHandler_GetSchool(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		svc             *mockDirectoryService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "found",
			path: "/schools/1",
			svc: &mockDirectoryService{detail: &models.SchoolDetail{
				School:    models.School{ID: 1, Code: "SMAN1JKT"},
				Principal: &models.UserProfile{ID: 2, Email: "kepala.sekolah1@spksaw.com"},
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "not found",
			path:            "/schools/99",
			svc:             &mockDirectoryService{err: models.ErrNotFound},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MessageSchoolNotFound,
		},
		{
			name:            "non numeric id",
			path:            "/schools/abc",
			svc:             &mockDirectoryService{},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MessageSchoolNotFound,
		},
		{
			name:            "service failure",
			path:            "/schools/1",
			svc:             &mockDirectoryService{err: errors.New("database error")},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MessageServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSchoolRouter(tt.svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.expectedMessage, env.Message)

			if tt.expectedStatus == http.StatusOK {
				var detail map[string]any
				require.NoError(t, json.Unmarshal(env.Data, &detail))
				assert.Equal(t, "SMAN1JKT", detail["code"])
				principal, ok := detail["principal"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "kepala.sekolah1@spksaw.com", principal["email"])
			}
		})
	}
}

func TestSchoolHandler_ListSchoolUsers(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		svc            *mockDirectoryService
		expectedStatus int
		expectedQuery  services.UserListQuery
		expectedErrors map[string][]string
	}{
		{
			name:           "filtered",
			path:           "/schools/1/users?role=admin&active=true",
			svc:            &mockDirectoryService{users: []models.User{{ID: 3, Role: models.RoleAdmin, PasswordHash: "secret-hash"}}},
			expectedStatus: http.StatusOK,
			expectedQuery:  services.UserListQuery{Role: "admin", Active: "true"},
		},
		{
			name: "invalid role",
			path: "/schools/1/users?role=teacher",
			svc: &mockDirectoryService{err: &services.ValidationError{
				Fields: map[string][]string{"role": {"Role tidak valid"}},
			}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedQuery:  services.UserListQuery{Role: "teacher"},
			expectedErrors: map[string][]string{"role": {"Role tidak valid"}},
		},
		{
			name:           "school not found",
			path:           "/schools/99/users",
			svc:            &mockDirectoryService{err: models.ErrNotFound},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSchoolRouter(tt.svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedQuery, tt.svc.gotQuery)
			assert.NotContains(t, w.Body.String(), "secret-hash")

			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.expectedErrors, env.Errors)
		})
	}
}
