package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application statuses
const (
	ApplicationPending  = "PENDING"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

// Application links a candidate to an internship. At most one live application
// per (user, internship) pair.
type Application struct {
	gorm.Model
	UserID       uint           `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_internship"`
	InternshipID uint           `json:"internship_id" gorm:"index;not null;uniqueIndex:idx_user_internship"`
	TrackingCode string         `json:"tracking_code" gorm:"size:36"` // external reference shared with the candidate
	Status       string         `json:"status" gorm:"default:'PENDING'"`
	Responses    datatypes.JSON `json:"responses"` // answers to the internship's dynamic form
	ReviewedAt   *time.Time     `json:"reviewed_at"`
	Feedback     string         `json:"feedback" gorm:"type:text"`
	IsDeleted    bool           `gorm:"default:false"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
