package models

const (
	TimesheetStatusInProgress = "In Progress"
	TimesheetStatusSubmitted  = "Submitted"
)

// Timesheet is a per-day work-hours record. CleanerName is a snapshot
// taken at creation so the row stays readable on its own.
type Timesheet struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CleanerID     string  `json:"cleanerId" gorm:"type:varchar(64);not null"`
	CleanerName   string  `json:"cleanerName" gorm:"type:varchar(255);not null"`
	Date          string  `json:"date" gorm:"type:varchar(10);not null"`
	CheckInTime   string  `json:"checkInTime" gorm:"type:varchar(5);not null"`
	CheckOutTime  *string `json:"checkOutTime" gorm:"type:varchar(5)"`
	TotalHours    float64 `json:"totalHours" gorm:"not null;default:0"`
	JobsCompleted int     `json:"jobsCompleted" gorm:"not null;default:0"`
	Status        string  `json:"status" gorm:"type:varchar(32);not null"`
}
