package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task is one unit of work within a learning path. OrderIndex ranks tasks for
// sequential gating; it is not guaranteed unique, ties fall back to insertion
// order (row ID). DeadlineOffset is in days from the internship start date.
type Task struct {
	gorm.Model
	LearningPathID uint           `json:"learning_path_id" gorm:"index;not null"`
	Title          string         `json:"title"`
	Description    string         `json:"description" gorm:"type:text"`
	Content        datatypes.JSON `json:"content"` // free-form payload rendered by the frontend
	OrderIndex     int            `json:"order_index" gorm:"default:0"`
	DeadlineOffset int            `json:"deadline_offset" gorm:"default:7"`
	IsDeleted      bool           `gorm:"default:false"`
}
