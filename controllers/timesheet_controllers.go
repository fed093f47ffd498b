package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/services"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

type TimesheetController struct {
	DB *gorm.DB
}

func NewTimesheetController(db *gorm.DB) *TimesheetController {
	return &TimesheetController{DB: db}
}

// GetAllTimesheets -> admins see everything, cleaners their own rows
func (tc *TimesheetController) GetAllTimesheets(c *gin.Context) {
	q := tc.DB.Order("date asc, id asc")
	if isCleaner(c) {
		q = q.Where("cleaner_id = ?", currentUserID(c))
	}

	timesheets := []models.Timesheet{}
	if err := q.Find(&timesheets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, timesheets)
}

// CreateTimesheet records a day's hours for the caller. With a check-out
// time the sheet is Submitted and totalHours derived; without one it stays
// In Progress at zero hours.
func (tc *TimesheetController) CreateTimesheet(c *gin.Context) {
	var req struct {
		Date         string  `json:"date"`
		CheckInTime  string  `json:"checkInTime"`
		CheckOutTime *string `json:"checkOutTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" || req.CheckInTime == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Date and check-in time required"))
		return
	}

	totalHours := 0.0
	status := models.TimesheetStatusInProgress
	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		in, errIn := minutesOfDay(req.CheckInTime)
		out, errOut := minutesOfDay(*req.CheckOutTime)
		if errIn != nil || errOut != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid time format"))
			return
		}
		totalHours = round2(float64(out-in) / 60)
		status = models.TimesheetStatusSubmitted
	}

	// Snapshot the cleaner's display name; fall back to the account name
	// for admins filing a sheet.
	cleanerName := currentUserName(c)
	var cleaner models.Cleaner
	if err := tc.DB.First(&cleaner, "id = ?", currentUserID(c)).Error; err == nil {
		cleanerName = cleaner.Name
	}

	timesheet := models.Timesheet{
		ID:           utils.NewID(),
		CleanerID:    currentUserID(c),
		CleanerName:  cleanerName,
		Date:         req.Date,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		TotalHours:   totalHours,
		Status:       status,
	}

	if err := tc.DB.Create(&timesheet).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(tc.DB, "%s submitted timesheet for %s", cleanerName, timesheet.Date)

	utils.RespondJSON(c, http.StatusCreated, timesheet)
}

// minutesOfDay parses "HH:MM" into minutes since midnight.
func minutesOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("time out of range %q", s)
	}

	return hour*60 + min, nil
}
