package main

import (
	"fmt"
	"io"

	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/services"
)

// endpoints lists the auth routes printed at the end of the report
var endpoints = []string{
	"POST /api/auth/login",
	"POST /api/auth/logout",
	"POST /api/auth/refresh",
	"GET  /api/auth/me",
}

// printReport renders the setup report for a terminal
func printReport(w io.Writer, report *services.SetupReport) {
	fmt.Fprintln(w, "Testing authentication setup...")

	fmt.Fprintln(w, "\nDatabase status:")
	fmt.Fprintf(w, "   Schools: %d\n", report.Schools)
	fmt.Fprintf(w, "   Users: %d\n", report.Users)

	fmt.Fprintln(w, "\nUser roles:")
	for i := len(models.Roles) - 1; i >= 0; i-- {
		role := models.Roles[i]
		fmt.Fprintf(w, "   %s: %d users\n", role, report.UsersByRole[role])
	}

	if report.SuperAdmin != nil {
		fmt.Fprintln(w, "\nSuper admin account:")
		fmt.Fprintf(w, "   Email: %s\n", report.SuperAdmin.Email)
		fmt.Fprintf(w, "   Name: %s\n", report.SuperAdmin.Name)
		fmt.Fprintf(w, "   Active: %s\n", yesNo(report.SuperAdmin.IsActive))
		if report.SuperAdminPasswordOK {
			fmt.Fprintln(w, "   Password verification successful")
		} else {
			fmt.Fprintln(w, "   Password verification failed")
		}
	}

	fmt.Fprintln(w, "\nSchool relationships:")
	fmt.Fprintf(w, "   Schools with principal: %d\n", report.SchoolsWithPrincipal)

	fmt.Fprintln(w, "\nJWT configuration:")
	if report.JWTSecretSet {
		fmt.Fprintln(w, "   JWT secret is configured")
	} else {
		fmt.Fprintln(w, "   JWT secret is missing")
	}
	fmt.Fprintf(w, "   TTL: %d minutes\n", report.JWTTTLMinutes)

	fmt.Fprintln(w, "\nSample login credentials:")
	fmt.Fprintln(w, "   Super admin:")
	fmt.Fprintln(w, "     Email: superadmin@spksaw.com")
	fmt.Fprintf(w, "     Password: %s\n", services.DefaultSeedPassword)
	if report.SampleAdmin != nil {
		fmt.Fprintln(w, "   Admin:")
		fmt.Fprintf(w, "     Email: %s\n", report.SampleAdmin.Email)
		fmt.Fprintf(w, "     Password: %s\n", services.DefaultSeedPassword)
	}

	fmt.Fprintln(w, "\nAPI endpoints:")
	for _, endpoint := range endpoints {
		fmt.Fprintf(w, "   %s\n", endpoint)
	}

	if !report.OK() {
		fmt.Fprintln(w, "\nProblems:")
		for _, problem := range report.Problems {
			fmt.Fprintf(w, "   %s\n", problem)
		}
		return
	}
	fmt.Fprintln(w, "\nAuthentication setup test completed successfully!")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
