package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

// MaxActivityEntries caps the audit trail; oldest entries are evicted.
const MaxActivityEntries = 100

// RecordActivity appends one entry to the activity log and trims anything
// beyond the newest MaxActivityEntries rows. Logging must never fail a
// request, so errors are logged and swallowed.
func RecordActivity(db *gorm.DB, format string, args ...interface{}) {
	entry := models.ActivityLog{
		ID:        utils.NewID(),
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	}

	if err := db.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("failed to record activity: %v", err)
		return
	}

	var count int64
	if err := db.Model(&models.ActivityLog{}).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("failed to count activity log: %v", err)
		return
	}

	if count > MaxActivityEntries {
		var oldest []models.ActivityLog
		db.Order("timestamp asc, id asc").Limit(int(count - MaxActivityEntries)).Find(&oldest)
		if len(oldest) > 0 {
			if err := db.Delete(&oldest).Error; err != nil {
				utils.ErrorLogger.Printf("failed to trim activity log: %v", err)
			}
		}
	}
}
