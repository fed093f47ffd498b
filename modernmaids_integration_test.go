package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/database"
	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/router"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main portal flow over the demo
// dataset:
// 1. Admin and cleaner log in
// 2. Cleaner sees only their assigned jobs
// 3. Cleaner checks in and out of a job
// 4. Admin completes the job; the cleaner's counters move
// 5. Admin-only reporting surfaces (dashboard, activity) respond
func TestEndToEndIntegration(t *testing.T) {
	db := setupSeededDB(t)
	r := router.SetupRouter(db)

	adminToken := loginAs(t, r, "admin@modernmaids.com", "admin123")
	sarahToken := loginAs(t, r, "cleaner@modernmaids.com", "cleaner123")

	// Health is open.
	w := request(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Sarah (cleaner id 2) is assigned the seeded jobs 1 and 3.
	w = request(t, r, http.MethodGet, "/api/jobs", sarahToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var jobs []models.Job
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, "2", *j.AssignedCleanerID)
	}

	// Check in and out of job 1.
	w = request(t, r, http.MethodPost, "/api/jobs/1/checkin", sarahToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var job models.Job
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, models.JobStatusInProgress, job.Status)
	assert.NotNil(t, job.CheckInTime)

	w = request(t, r, http.MethodPost, "/api/jobs/1/checkin", sarahToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(t, r, http.MethodPost, "/api/jobs/1/checkout", sarahToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin marks the job completed; Sarah's counters move by one.
	var before models.Cleaner
	assert.NoError(t, db.First(&before, "id = ?", "2").Error)

	w = request(t, r, http.MethodPatch, "/api/jobs/1/status", adminToken,
		map[string]string{"status": "Completed"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.NotNil(t, job.CompletedAt)
	assert.NotNil(t, job.CheckOutTime)

	var after models.Cleaner
	assert.NoError(t, db.First(&after, "id = ?", "2").Error)
	assert.Equal(t, before.TotalJobs+1, after.TotalJobs)
	assert.Equal(t, before.CompletedJobs+1, after.CompletedJobs)

	// Dashboard reflects the five seeded jobs, two of them now completed.
	w = request(t, r, http.MethodGet, "/api/dashboard/stats", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(5), stats["totalJobs"])
	assert.Equal(t, float64(2), stats["completedJobs"])
	assert.Equal(t, float64(40), stats["completionRate"])
	assert.Equal(t, float64(3), stats["totalCleaners"])
	assert.Equal(t, float64(2), stats["activeCleaners"])

	// The audit trail is admin-only and carries the check-in entry.
	w = request(t, r, http.MethodGet, "/api/activity", sarahToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(t, r, http.MethodGet, "/api/activity", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityLog
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	found := false
	for _, e := range entries {
		if e.Message == "Sarah Cleaner checked in for Job #1 at Downtown Office Building" {
			found = true
		}
	}
	assert.True(t, found, "check-in activity entry missing")
}

func setupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Cleaner{},
		&models.Job{},
		&models.Timesheet{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}

func request(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := request(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}
