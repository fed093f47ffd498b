package models

const (
	CleanerStatusActive  = "active"
	CleanerStatusOffline = "offline"
)

type Cleaner struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name          string  `json:"name" gorm:"type:varchar(255);not null"`
	Status        string  `json:"status" gorm:"type:varchar(32);not null;default:'active'"`
	Phone         string  `json:"phone" gorm:"type:varchar(64)"`
	HireDate      string  `json:"hireDate" gorm:"type:varchar(10)"`
	TotalJobs     int     `json:"totalJobs" gorm:"not null;default:0"`
	CompletedJobs int     `json:"completedJobs" gorm:"not null;default:0"`
	Rating        float64 `json:"rating" gorm:"not null;default:0"`
}
