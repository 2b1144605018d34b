package models

import (
	"time"

	"gorm.io/gorm"
)

// Submission statuses
const (
	SubmissionPending         = "PENDING"
	SubmissionApproved        = "APPROVED"
	SubmissionRejected        = "REJECTED"
	SubmissionRequiresChanges = "REQUIRES_CHANGES"
)

// Submission is an intern's attempt at a task. The unique index enforces at
// most one row per (user, task): resubmitting over a REQUIRES_CHANGES review
// rewrites this row in place instead of inserting a new one.
type Submission struct {
	gorm.Model
	UserID       uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_task"`
	TaskID       uint       `json:"task_id" gorm:"index;not null;uniqueIndex:idx_user_task"`
	FileURL      string     `json:"file_url" gorm:"size:512"` // object storage URL supplied by the client
	Comment      string     `json:"comment" gorm:"type:text"`
	Status       string     `json:"status" gorm:"default:'PENDING'"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	Feedback     string     `json:"feedback" gorm:"type:text"`
	AdminComment string     `json:"admin_comment" gorm:"type:text"`
	IsDeleted    bool       `gorm:"default:false"`
}
