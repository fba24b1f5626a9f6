package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Viewer roles. Division heads approve at the DivHead stage for their own
// division; admin is the company-wide fallback actor.
const (
	RoleStaff   = "staff"
	RoleDivHead = "div_head"
	RoleAdmin   = "admin"
)

// Special divisions the approval policy keys on.
const (
	DivisionHRD     = "HRD & GA"
	DivisionFinance = "FINANCE"
	DivisionGeneral = "GENERAL"
)

// SameDivision compares two division names the way the policy does:
// trimmed and case-insensitive.
func SameDivision(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// User represents the central user entity for logic and database structure
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"type:varchar(255);not null" json:"-"` // Omit password from JSON requests/responses
	Role      string         `gorm:"type:varchar(50);not null" json:"role"`
	Division  string         `gorm:"type:varchar(100);not null;default:'GENERAL'" json:"division"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // GORM soft delete
}

// ViewerIdentity is the immutable identity of the authenticated user for the
// duration of a request. It is established once from the auth token and
// passed explicitly into every approval decision.
type ViewerIdentity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Division string `json:"division"`
}

// Viewer builds the identity value handed to the approval core.
func (u *User) Viewer() ViewerIdentity {
	division := u.Division
	if division == "" {
		division = DivisionGeneral
	}
	return ViewerIdentity{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Division: division,
	}
}
