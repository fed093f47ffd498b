package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/router"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
}

// setupTestDB opens a per-test in-memory SQLite database (named so the
// connection pool shares one store) and seeds the accounts the tests use:
// one admin and two cleaners whose ids match their cleaner records.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
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

	db.Create(&[]models.User{
		{ID: "1", Name: "Admin Manager", Email: "admin@modernmaids.com", Password: "admin123", Role: models.RoleAdmin},
		{ID: "2", Name: "Sarah Cleaner", Email: "cleaner@modernmaids.com", Password: "cleaner123", Role: models.RoleCleaner},
		{ID: "3", Name: "Mike Cleaner", Email: "mike@modernmaids.com", Password: "cleaner123", Role: models.RoleCleaner},
	})
	db.Create(&[]models.Cleaner{
		{ID: "2", Name: "Sarah Cleaner", Status: models.CleanerStatusActive, Phone: "+1 (555) 123-4567", HireDate: "2024-01-15"},
		{ID: "3", Name: "Mike Cleaner", Status: models.CleanerStatusActive, Phone: "+1 (555) 234-5678", HireDate: "2024-02-20"},
	})

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	return router.SetupRouter(db)
}

// doRequest performs a JSON request against the router, attaching the
// bearer token when given.
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// login authenticates against the API and returns the issued token.
func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("login did not return a token: %q", w.Body.String())
	}
	return token
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	return login(t, r, "admin@modernmaids.com", "admin123")
}

func loginSarah(t *testing.T, r *gin.Engine) string {
	return login(t, r, "cleaner@modernmaids.com", "cleaner123")
}
