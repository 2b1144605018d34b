package models

import "gorm.io/gorm"

// DeadlineAdjustment overrides a task's default deadline offset for one user
// only. Other users on the same task keep the task's own offset. At most one
// live row per (user, task), enforced by the upsert path so a revoked
// adjustment can be granted again.
type DeadlineAdjustment struct {
	gorm.Model
	UserID            uint   `json:"user_id" gorm:"index;not null"`
	TaskID            uint   `json:"task_id" gorm:"index;not null"`
	NewDeadlineOffset int    `json:"new_deadline_offset"`
	Reason            string `json:"reason" gorm:"type:text"`
	CreatedBy         uint   `json:"created_by"` // admin user id
	IsDeleted         bool   `gorm:"default:false"`
}
