package models

import "time"

const (
	JobStatusScheduled  = "Scheduled"
	JobStatusInProgress = "In Progress"
	JobStatusCompleted  = "Completed"
	JobStatusCancelled  = "Cancelled"
)

// ValidJobStatus reports whether s is one of the four lifecycle states.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a scheduled cleaning engagement. CheckOutTime is only ever set
// after CheckInTime, and CompletedAt only together with status Completed.
type Job struct {
	ID                string     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CustomerName      string     `json:"customerName" gorm:"type:varchar(255);not null"`
	Address           string     `json:"address" gorm:"type:varchar(255);not null"`
	ServiceType       string     `json:"serviceType" gorm:"type:varchar(128);not null"`
	ScheduledDate     string     `json:"scheduledDate" gorm:"type:varchar(10);not null"`
	ScheduledTime     string     `json:"scheduledTime" gorm:"type:varchar(5);not null"`
	EstimatedDuration float64    `json:"estimatedDuration" gorm:"not null;default:2"`
	Status            string     `json:"status" gorm:"type:varchar(32);not null;default:'Scheduled'"`
	AssignedCleanerID *string    `json:"assignedCleanerId" gorm:"type:varchar(64)"`
	CheckInTime       *time.Time `json:"checkInTime"`
	CheckOutTime      *time.Time `json:"checkOutTime"`
	CompletedAt       *time.Time `json:"completedAt"`
	Notes             string     `json:"notes" gorm:"type:text"`
	CreatedAt         time.Time  `json:"createdAt"`
}
