package models

import "gorm.io/gorm"

type Workout struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`

	Type           string  `gorm:"size:32;not null" json:"type"` // running, gym, yoga, ...
	DurationMin    int     `json:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned"`

	Date   string `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Source string `gorm:"size:16" json:"source"`     // "manual" | "google_fit"
}
