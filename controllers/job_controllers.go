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

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

// scoped narrows a job query to the caller's own jobs for cleaner
// accounts; admins see the full registry.
func (jc *JobController) scoped(c *gin.Context) *gorm.DB {
	q := jc.DB.Order("created_at asc")
	if isCleaner(c) {
		q = q.Where("assigned_cleaner_id = ?", currentUserID(c))
	}
	return q
}

// GetAllJobs -> role-scoped listing
func (jc *JobController) GetAllJobs(c *gin.Context) {
	jobs := []models.Job{}
	if err := jc.scoped(c).Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, jobs)
}

// GetCompletedJobs -> role-scoped listing of finished work
func (jc *JobController) GetCompletedJobs(c *gin.Context) {
	jobs := []models.Job{}
	if err := jc.scoped(c).Where("status = ?", models.JobStatusCompleted).Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, jobs)
}

// CreateJob schedules a new engagement (admin only, enforced in the router).
func (jc *JobController) CreateJob(c *gin.Context) {
	var req struct {
		CustomerName      string  `json:"customerName"`
		Address           string  `json:"address"`
		ServiceType       string  `json:"serviceType"`
		ScheduledDate     string  `json:"scheduledDate"`
		ScheduledTime     string  `json:"scheduledTime"`
		EstimatedDuration float64 `json:"estimatedDuration"`
		AssignedCleanerID *string `json:"assignedCleanerId"`
		Notes             string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CustomerName == "" || req.Address == "" || req.ServiceType == "" ||
		req.ScheduledDate == "" || req.ScheduledTime == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Missing required fields"))
		return
	}

	if req.EstimatedDuration == 0 {
		req.EstimatedDuration = 2
	}

	job := models.Job{
		ID:                utils.NewID(),
		CustomerName:      req.CustomerName,
		Address:           req.Address,
		ServiceType:       req.ServiceType,
		ScheduledDate:     req.ScheduledDate,
		ScheduledTime:     req.ScheduledTime,
		EstimatedDuration: req.EstimatedDuration,
		Status:            models.JobStatusScheduled,
		AssignedCleanerID: req.AssignedCleanerID,
		Notes:             req.Notes,
		CreatedAt:         time.Now(),
	}

	if err := jc.DB.Create(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(jc.DB, "New cleaning job created for %s", job.CustomerName)

	utils.RespondJSON(c, http.StatusCreated, job)
}

// loadOwnJob fetches the job and enforces that cleaners only touch their
// assigned jobs. Returns nil after writing the error response.
func (jc *JobController) loadOwnJob(c *gin.Context, denied string) *models.Job {
	var job models.Job
	if err := jc.DB.First(&job, "id = ?", c.Param("job_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Job not found"))
		return nil
	}

	if isCleaner(c) && (job.AssignedCleanerID == nil || *job.AssignedCleanerID != currentUserID(c)) {
		utils.RespondError(c, http.StatusForbidden, errors.New(denied))
		return nil
	}

	return &job
}

// UpdateJobStatus moves a job through its lifecycle. Completion stamps
// completedAt, backfills checkOutTime and credits the assigned cleaner's
// counters.
func (jc *JobController) UpdateJobStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidJobStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid status"))
		return
	}

	job := jc.loadOwnJob(c, "You can only update your assigned jobs")
	if job == nil {
		return
	}

	job.Status = req.Status
	if req.Status == models.JobStatusCompleted {
		now := time.Now()
		job.CompletedAt = &now
		if job.CheckOutTime == nil {
			job.CheckOutTime = &now
		}

		if job.AssignedCleanerID != nil {
			var cleaner models.Cleaner
			if err := jc.DB.First(&cleaner, "id = ?", *job.AssignedCleanerID).Error; err == nil {
				cleaner.TotalJobs++
				cleaner.CompletedJobs++
				jc.DB.Save(&cleaner)
			}
		}
	}

	if err := jc.DB.Save(job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(jc.DB, "Job #%s status updated to %s by %s",
		job.ID, job.Status, currentUserName(c))

	utils.RespondJSON(c, http.StatusOK, job)
}

// CheckIn stamps the arrival time and forces the job to In Progress.
func (jc *JobController) CheckIn(c *gin.Context) {
	job := jc.loadOwnJob(c, "You can only check in to your assigned jobs")
	if job == nil {
		return
	}

	if job.CheckInTime != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Already checked in"))
		return
	}

	now := time.Now()
	job.CheckInTime = &now
	job.Status = models.JobStatusInProgress

	if err := jc.DB.Save(job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(jc.DB, "%s checked in for Job #%s at %s",
		currentUserName(c), job.ID, job.CustomerName)

	utils.RespondJSON(c, http.StatusOK, job)
}

// CheckOut stamps the departure time; the status is left for an explicit
// status update.
func (jc *JobController) CheckOut(c *gin.Context) {
	job := jc.loadOwnJob(c, "You can only check out from your assigned jobs")
	if job == nil {
		return
	}

	if job.CheckInTime == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Must check in before checking out"))
		return
	}
	if job.CheckOutTime != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Already checked out"))
		return
	}

	now := time.Now()
	job.CheckOutTime = &now

	if err := jc.DB.Save(job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(jc.DB, "%s checked out from Job #%s at %s",
		currentUserName(c), job.ID, job.CustomerName)

	utils.RespondJSON(c, http.StatusOK, job)
}
