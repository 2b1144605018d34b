package models

import "gorm.io/gorm"

// LearningPath is an ordered curriculum of tasks shared by zero or more internships
type LearningPath struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}
