package models

import "gorm.io/gorm"

type Goal struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`

	Type         string  `gorm:"size:16" json:"type"` // "steps" | "weight" | "sleep" | "calories"
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `gorm:"default:0" json:"currentValue"`

	StartDate string `gorm:"size:10" json:"startDate"`
	EndDate   string `gorm:"size:10" json:"endDate"`

	Status string `gorm:"size:16;default:active" json:"status"` // "active" | "completed"
}
