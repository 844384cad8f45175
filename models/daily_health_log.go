package models

import "gorm.io/gorm"

// DailyHealthLog is one day's metrics for one user. The (user_id, date)
// pair is unique; writers upsert against it.
type DailyHealthLog struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_user_date;not null" json:"userId"`
	Date   string `gorm:"uniqueIndex:idx_user_date;size:10;not null" json:"date"` // YYYY-MM-DD

	Steps          int     `json:"steps"`
	DistanceKm     float64 `json:"distance"` // km
	CaloriesBurned int     `json:"caloriesBurned"`
	HeartRateAvg   int     `json:"heartRateAvg"`

	SleepDuration float64 `json:"sleepDuration"`                // hours
	SleepQuality  string  `gorm:"size:10" json:"sleepQuality"`  // "poor" | "average" | "good"

	CaloriesConsumed float64 `json:"caloriesConsumed"`
	WaterIntake      float64 `json:"waterIntake"` // liters

	MoodLevel   int `json:"moodLevel"`   // 1..5
	StressLevel int `json:"stressLevel"` // 1..5

	Source string `gorm:"size:16;default:manual" json:"source"` // "manual" | "google_fit" | "strava"
}
