package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity is one imported or manually recorded exercise session.
// Strava imports upsert by StravaActivityID.
type Activity struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"userId"`
	Source string `gorm:"size:16;not null" json:"source"` // "strava" | "manual"

	StravaActivityID int64 `gorm:"index" json:"stravaActivityId,omitempty"`

	Type        string  `gorm:"size:32;not null" json:"type"` // Run, Walk, Ride, Yoga, ...
	DurationMin int     `json:"durationMin"`
	DistanceKm  float64 `json:"distanceKm"`
	Steps       int     `json:"steps"`

	AvgHeartRate   int     `json:"avgHeartRate"`
	MaxHeartRate   int     `json:"maxHeartRate"`
	CaloriesBurned float64 `json:"caloriesBurned"`

	StartTime time.Time `json:"startTime"`
}
