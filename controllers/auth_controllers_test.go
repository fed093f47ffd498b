package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kibichokaranja/modern-maids-demo/utils"
)

func TestLoginReturnsTokenWithMatchingRole(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@modernmaids.com",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, "admin@modernmaids.com", user["email"])
	assert.Nil(t, user["password"])

	// The decoded token carries the same identity.
	claims, err := utils.ParseToken(body["token"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	cases := []map[string]string{
		{"email": "admin@modernmaids.com", "password": "wrong"},
		{"email": "nobody@modernmaids.com", "password": "admin123"},
	}
	for _, payload := range cases {
		w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", payload)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@modernmaids.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	token := loginSarah(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "2", body["id"])
	assert.Equal(t, "Sarah Cleaner", body["name"])
	assert.Equal(t, "cleaner", body["role"])
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doRequest(t, r, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", decodeBody(t, w)["error"])

	w = doRequest(t, r, http.MethodGet, "/api/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, w)["error"])
}
