package main

import (
	"bytes"
	"testing"

	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	tests := []struct {
		name        string
		report      *services.SetupReport
		contains    []string
		notContains []string
	}{
		{
			name: "healthy setup",
			report: &services.SetupReport{
				Schools: 5,
				Users:   27,
				UsersByRole: map[models.Role]int{
					models.RoleSuperAdmin:      1,
					models.RoleAdmin:           5,
					models.RoleSchoolPrincipal: 5,
					models.RoleUser:            16,
				},
				SuperAdmin:           &models.User{Email: "superadmin@spksaw.com", Name: "Super Administrator", IsActive: true},
				SuperAdminPasswordOK: true,
				SampleAdmin:          &models.User{Email: "admin1@spksaw.com"},
				SchoolsWithPrincipal: 5,
				JWTSecretSet:         true,
				JWTTTLMinutes:        60,
			},
			contains: []string{
				"Schools: 5",
				"Users: 27",
				"school_principal: 5 users",
				"user: 16 users",
				"Active: Yes",
				"Password verification successful",
				"Schools with principal: 5",
				"TTL: 60 minutes",
				"Email: admin1@spksaw.com",
				"GET  /api/auth/me",
				"completed successfully",
			},
			notContains: []string{"Problems:"},
		},
		{
			name: "empty database",
			report: &services.SetupReport{
				UsersByRole:   map[models.Role]int{},
				JWTSecretSet:  true,
				JWTTTLMinutes: 60,
				Problems:      []string{"no schools found, run the seeder"},
			},
			contains:    []string{"super_admin: 0 users", "Problems:", "no schools found, run the seeder"},
			notContains: []string{"Super admin account:", "completed successfully", "Admin:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			printReport(&buf, tt.report)

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}
