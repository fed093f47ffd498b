package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats recomputes the console summary from the job and
// cleaner registries on every call; nothing is cached.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalJobs      int64   `json:"totalJobs"`
		ScheduledJobs  int64   `json:"scheduledJobs"`
		InProgressJobs int64   `json:"inProgressJobs"`
		CompletedJobs  int64   `json:"completedJobs"`
		ActiveCleaners int64   `json:"activeCleaners"`
		TotalCleaners  int64   `json:"totalCleaners"`
		CompletionRate float64 `json:"completionRate"`
	}

	dc.DB.Model(&models.Job{}).Count(&stats.TotalJobs)
	dc.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusScheduled).Count(&stats.ScheduledJobs)
	dc.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusInProgress).Count(&stats.InProgressJobs)
	dc.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusCompleted).Count(&stats.CompletedJobs)

	dc.DB.Model(&models.Cleaner{}).Where("status = ?", models.CleanerStatusActive).Count(&stats.ActiveCleaners)
	dc.DB.Model(&models.Cleaner{}).Count(&stats.TotalCleaners)

	if stats.TotalJobs > 0 {
		stats.CompletionRate = round1(float64(stats.CompletedJobs) / float64(stats.TotalJobs) * 100)
	}

	utils.RespondJSON(c, http.StatusOK, stats)
}
