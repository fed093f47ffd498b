package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/services"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

type CleanerController struct {
	DB *gorm.DB
}

func NewCleanerController(db *gorm.DB) *CleanerController {
	return &CleanerController{DB: db}
}

// GetAllCleaners
func (cc *CleanerController) GetAllCleaners(c *gin.Context) {
	cleaners := []models.Cleaner{}
	if err := cc.DB.Find(&cleaners).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, cleaners)
}

// CreateCleaner registers a new staff member with zeroed counters.
func (cc *CleanerController) CreateCleaner(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		HireDate string `json:"hireDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Cleaner name required"))
		return
	}

	if req.HireDate == "" {
		req.HireDate = time.Now().Format("2006-01-02")
	}

	cleaner := models.Cleaner{
		ID:       utils.NewID(),
		Name:     req.Name,
		Status:   models.CleanerStatusActive,
		Phone:    req.Phone,
		HireDate: req.HireDate,
	}

	if err := cc.DB.Create(&cleaner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(cc.DB, "Admin created new cleaner: %s", cleaner.Name)

	utils.RespondJSON(c, http.StatusCreated, cleaner)
}

// GetCleanerMetrics aggregates a cleaner's jobs into completion and
// duration figures. Recomputed from the job registry on every call.
func (cc *CleanerController) GetCleanerMetrics(c *gin.Context) {
	id := c.Param("cleaner_id")

	var cleaner models.Cleaner
	if err := cc.DB.First(&cleaner, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Cleaner not found"))
		return
	}

	jobs := []models.Job{}
	if err := cc.DB.Where("assigned_cleaner_id = ?", id).Order("created_at asc").Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var completed, inProgress, pending int
	var durationSum float64
	var durationCount int
	for _, j := range jobs {
		switch j.Status {
		case models.JobStatusCompleted:
			completed++
			if j.CheckInTime != nil && j.CheckOutTime != nil {
				durationSum += j.CheckOutTime.Sub(*j.CheckInTime).Hours()
				durationCount++
			}
		case models.JobStatusInProgress:
			inProgress++
		case models.JobStatusScheduled:
			pending++
		}
	}

	completionRate := 0.0
	if len(jobs) > 0 {
		completionRate = round1(float64(completed) / float64(len(jobs)) * 100)
	}

	avgDuration := 0.0
	if durationCount > 0 {
		avgDuration = round2(durationSum / float64(durationCount))
	}

	recent := jobs
	if len(recent) > 10 {
		recent = recent[:10]
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"cleaner":            cleaner,
		"totalJobs":          len(jobs),
		"completedJobs":      completed,
		"inProgressJobs":     inProgress,
		"pendingJobs":        pending,
		"completionRate":     completionRate,
		"averageJobDuration": avgDuration,
		"recentJobs":         recent,
	})
}
