package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Type    string `gorm:"size:16" json:"type"` // "alert" | "reminder"
	Message string `gorm:"type:text" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
