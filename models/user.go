package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Age    int     `json:"age"`
	Gender string  `gorm:"size:10" json:"gender"` // "male" | "female" | "other"
	Height float64 `json:"height"`                // cm
	Weight float64 `json:"weight"`                // kg

	Role string `gorm:"size:16;default:user" json:"role"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`

	// Strava connection, populated by the OAuth callback
	StravaAccessToken  string `json:"-"`
	StravaRefreshToken string `json:"-"`
	StravaExpiresAt    int64  `json:"-"` // unix seconds
	StravaAthleteID    int64  `json:"-"`
}
