package models

import "gorm.io/gorm"

// GamificationProfile accumulates one user's lifetime points. DailyPoints is
// the award computed for LastUpdatedDate at the most recent sync, not a
// running total; Level is always derived as points/100 + 1.
type GamificationProfile struct {
	gorm.Model
	UserID          uint     `gorm:"uniqueIndex;not null" json:"userId"`
	Points          int      `gorm:"default:0" json:"points"`
	DailyPoints     int      `gorm:"default:0" json:"dailyPoints"`
	LastUpdatedDate string   `gorm:"size:10" json:"lastUpdatedDate"` // YYYY-MM-DD
	Level           int      `gorm:"default:1" json:"level"`
	Badges          []string `gorm:"serializer:json" json:"badges"`
}
