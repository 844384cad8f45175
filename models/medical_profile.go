package models

import (
	"time"

	"gorm.io/gorm"
)

type Medication struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Timing string `json:"timing"`
}

type Vaccination struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

type MedicalReport struct {
	Title      string    `json:"title"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// MedicalProfile is one-per-user, upserted as a whole document.
type MedicalProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	Conditions   []string        `gorm:"serializer:json" json:"conditions"`
	Medications  []Medication    `gorm:"serializer:json" json:"medications"`
	Vaccinations []Vaccination   `gorm:"serializer:json" json:"vaccinations"`
	Reports      []MedicalReport `gorm:"serializer:json" json:"reports"`
}
