package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
)

// Seed loads the demo dataset into an empty database: three portal
// accounts, three cleaners, five jobs in assorted lifecycle states, three
// timesheets and a handful of activity entries. A non-empty users table
// means the database has already been seeded (or is live) and is left
// untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	hoursAgo := func(h float64) *time.Time {
		t := now.Add(-time.Duration(h * float64(time.Hour)))
		return &t
	}

	users := []models.User{
		{ID: "1", Name: "Admin Manager", Email: "admin@modernmaids.com", Password: "admin123", Role: models.RoleAdmin},
		{ID: "2", Name: "Sarah Cleaner", Email: "cleaner@modernmaids.com", Password: "cleaner123", Role: models.RoleCleaner},
		{ID: "3", Name: "Mike Cleaner", Email: "mike@modernmaids.com", Password: "cleaner123", Role: models.RoleCleaner},
	}

	cleaners := []models.Cleaner{
		{ID: "2", Name: "Sarah Cleaner", Status: models.CleanerStatusActive, Phone: "+1 (555) 123-4567", HireDate: "2024-01-15", TotalJobs: 45, CompletedJobs: 42, Rating: 4.8},
		{ID: "3", Name: "Mike Cleaner", Status: models.CleanerStatusActive, Phone: "+1 (555) 234-5678", HireDate: "2024-02-20", TotalJobs: 38, CompletedJobs: 35, Rating: 4.6},
		{ID: "4", Name: "Emily Johnson", Status: models.CleanerStatusOffline, Phone: "+1 (555) 345-6789", HireDate: "2024-03-10", TotalJobs: 28, CompletedJobs: 26, Rating: 4.9},
	}

	sarah, mike := "2", "3"
	jobs := []models.Job{
		{
			ID: "1", CustomerName: "Downtown Office Building",
			Address: "123 Business Ave, Suite 200, Dallas, TX 75201", ServiceType: "Office Cleaning",
			ScheduledDate: day(1), ScheduledTime: "09:00", EstimatedDuration: 3,
			Status: models.JobStatusScheduled, AssignedCleanerID: &sarah,
			Notes: "Focus on restrooms and kitchen area", CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "2", CustomerName: "Residential Home - Smith Family",
			Address: "456 Oak Street, Dallas, TX 75202", ServiceType: "Deep Cleaning",
			ScheduledDate: day(2), ScheduledTime: "14:00", EstimatedDuration: 4,
			Status: models.JobStatusScheduled, AssignedCleanerID: &mike,
			Notes: "Pet-friendly cleaning products only", CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID: "3", CustomerName: "Medical Clinic",
			Address: "789 Health Plaza, Dallas, TX 75203", ServiceType: "Medical Facility Cleaning",
			ScheduledDate: day(0), ScheduledTime: "08:00", EstimatedDuration: 5,
			Status: models.JobStatusInProgress, AssignedCleanerID: &sarah,
			CheckInTime: hoursAgo(2),
			Notes:       "Sterilization required", CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID: "4", CustomerName: "Retail Store",
			Address: "321 Commerce Blvd, Dallas, TX 75204", ServiceType: "Commercial Cleaning",
			ScheduledDate: day(-1), ScheduledTime: "18:00", EstimatedDuration: 2,
			Status: models.JobStatusCompleted, AssignedCleanerID: &mike,
			CheckInTime: hoursAgo(25), CheckOutTime: hoursAgo(23), CompletedAt: hoursAgo(23),
			Notes: "Completed successfully", CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID: "5", CustomerName: "Apartment Complex",
			Address: "555 Residential Way, Dallas, TX 75205", ServiceType: "Move-out Cleaning",
			ScheduledDate: day(3), ScheduledTime: "10:00", EstimatedDuration: 6,
			Status: models.JobStatusScheduled,
			Notes:  "Empty unit, full deep clean required", CreatedAt: now.Add(-30 * time.Minute),
		},
	}

	sarahOut := "17:30"
	mikeOut := "18:00"
	timesheets := []models.Timesheet{
		{ID: "1", CleanerID: "2", CleanerName: "Sarah Cleaner", Date: day(-1), CheckInTime: "08:45", CheckOutTime: &sarahOut, TotalHours: 8.75, JobsCompleted: 3, Status: models.TimesheetStatusSubmitted},
		{ID: "2", CleanerID: "3", CleanerName: "Mike Cleaner", Date: day(-1), CheckInTime: "09:00", CheckOutTime: &mikeOut, TotalHours: 9.0, JobsCompleted: 2, Status: models.TimesheetStatusSubmitted},
		{ID: "3", CleanerID: "2", CleanerName: "Sarah Cleaner", Date: day(0), CheckInTime: "08:00", TotalHours: 0, JobsCompleted: 0, Status: models.TimesheetStatusInProgress},
	}

	activity := []models.ActivityLog{
		{ID: "1", Message: "Server started - Modern Maids demo data loaded", Timestamp: *hoursAgo(6)},
		{ID: "2", Message: "New cleaning job created for Downtown Office Building", Timestamp: *hoursAgo(5)},
		{ID: "3", Message: "Job #1 assigned to Sarah Cleaner", Timestamp: *hoursAgo(4)},
		{ID: "4", Message: "Sarah Cleaner checked in for Job #3 at Medical Clinic", Timestamp: *hoursAgo(2)},
		{ID: "5", Message: "Job #4 completed by Mike Cleaner", Timestamp: *hoursAgo(1)},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Create(&cleaners).Error; err != nil {
			return err
		}
		if err := tx.Create(&jobs).Error; err != nil {
			return err
		}
		if err := tx.Create(&timesheets).Error; err != nil {
			return err
		}
		return tx.Create(&activity).Error
	})
}
