package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleIntern     = "INTERN"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User mirrors the identity provider's account plus local profile fields.
// Rows are provisioned on first authenticated request from token claims.
type User struct {
	gorm.Model
	Name         string     `json:"name" gorm:"default:''"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Mobile       string     `json:"mobile" gorm:"default:''"`
	Role         string     `json:"role" gorm:"default:'INTERN'"` // INTERN, ADMIN, SUPER_ADMIN
	University   string     `json:"university" gorm:"default:''"`
	Major        string     `json:"major" gorm:"default:''"`
	Bio          string     `json:"bio" gorm:"type:text"`
	ProfileImage string     `json:"profile_image" gorm:"default:''"`
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `gorm:"default:false"`
}
