package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Internship is an offering candidates apply to. It optionally references one
// LearningPath whose tasks the accepted interns work through.
type Internship struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Capacity    int    `json:"capacity" gorm:"default:0"` // 0 = unlimited

	// Start/End dates are nullable on purpose: drafts may be published before
	// scheduling is final. Progress evaluation substitutes "now" when missing.
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	LearningPathID *uint          `json:"learning_path_id" gorm:"index"`
	FormSchema     datatypes.JSON `json:"form_schema"` // dynamic application form definition
	IsPublished    bool           `json:"is_published" gorm:"default:false"`
	IsDeleted      bool           `gorm:"default:false"`
}
