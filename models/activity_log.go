package models

import "time"

type ActivityLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Message   string    `json:"message" gorm:"type:varchar(512);not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}
