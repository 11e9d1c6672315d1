package models

import "time"

// Role is the authorisation role of a user
type Role string

// Role values as stored in users.role
const (
	RoleSuperAdmin      Role = "super_admin"
	RoleAdmin           Role = "admin"
	RoleSchoolPrincipal Role = "school_principal"
	RoleUser            Role = "user"
)

// Roles lists every known role from the least to the most privileged
var Roles = []Role{RoleUser, RoleSchoolPrincipal, RoleAdmin, RoleSuperAdmin}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r.Level() > 0
}

// Level returns the rank of the role, 0 for unknown roles
func (r Role) Level() int {
	for i, role := range Roles {
		if role == r {
			return i + 1
		}
	}
	return 0
}

// AtLeast reports whether r is as privileged as required
func (r Role) AtLeast(required Role) bool {
	return r.Valid() && r.Level() >= required.Level()
}

// User represents a user in the system
type User struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	PasswordHash    string     `json:"-"` // Never serialize password hash
	Role            Role       `json:"role"`
	JobTitle        *string    `json:"job_title"`
	SchoolID        *int       `json:"school_id"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsSuperAdmin reports whether the user is the system-wide administrator
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdminOrAbove reports whether the user is an admin or super admin
func (u *User) IsAdminOrAbove() bool {
	return u.Role.AtLeast(RoleAdmin)
}

// IsSchoolPrincipal reports whether the user heads a school
func (u *User) IsSchoolPrincipal() bool {
	return u.Role == RoleSchoolPrincipal
}

// UserDetail is a user together with its school relation
type UserDetail struct {
	User
	School *School `json:"school"`
}

// SchoolSummary is the part of a school exposed inside a user profile
type SchoolSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Province string `json:"province"`
	District string `json:"district"`
}

// UserProfile is the sanitized projection of a user returned by the auth endpoints
type UserProfile struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Role     Role           `json:"role"`
	JobTitle *string        `json:"job_title"`
	School   *SchoolSummary `json:"school"`
	IsActive bool           `json:"is_active"`
}

// NewUserProfile builds the sanitized projection of user; school may be nil
func NewUserProfile(user *User, school *School) UserProfile {
	profile := UserProfile{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		JobTitle: user.JobTitle,
		IsActive: user.IsActive,
	}
	if school != nil {
		profile.School = &SchoolSummary{
			ID:       school.ID,
			Name:     school.Name,
			Code:     school.Code,
			Province: school.Province,
			District: school.District,
		}
	}
	return profile
}

// UserFilter narrows a listing of school members
type UserFilter struct {
	Role   Role
	Active *bool
}
