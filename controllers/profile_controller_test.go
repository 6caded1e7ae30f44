package controllers_test

import (
	"net/http"
	"testing"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "profile@example.com", "user")
	token := tokenFor(t, user)

	w := doRequest(t, router, testRequest{method: "GET", path: "/v1/profile", token: token})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	profile := data["user"].(map[string]interface{})
	assert.Equal(t, "profile@example.com", profile["email"])
	assert.Equal(t, "Test User", profile["name"])
}

func TestGetProfileRequiresAuth(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, testRequest{method: "GET", path: "/v1/profile"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "update-profile@example.com", "user")
	token := tokenFor(t, user)

	w := doRequest(t, router, testRequest{
		method: "PATCH",
		path:   "/v1/profile",
		body: map[string]interface{}{
			"name":      "New Name",
			"avatarUrl": "https://cdn.example.com/avatar.png",
		},
		token: token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, config.DB.First(&updated, user.ID).Error)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "https://cdn.example.com/avatar.png", updated.Image)
}

func TestUpdateProfileIgnoresEmailAndRole(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "immutable@example.com", "user")
	token := tokenFor(t, user)

	w := doRequest(t, router, testRequest{
		method: "PATCH",
		path:   "/v1/profile",
		body: map[string]interface{}{
			"name":  "Still Me",
			"email": "attacker@example.com",
			"role":  "admin",
		},
		token: token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	profile := data["user"].(map[string]interface{})
	assert.Equal(t, "immutable@example.com", profile["email"])

	var updated models.User
	require.NoError(t, config.DB.First(&updated, user.ID).Error)
	assert.Equal(t, "immutable@example.com", updated.Email)
	assert.Equal(t, "user", updated.Role)
	assert.Equal(t, "Still Me", updated.Name)
}

func TestUpdateProfileValidation(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "invalid-profile@example.com", "user")
	token := tokenFor(t, user)

	w := doRequest(t, router, testRequest{
		method: "PATCH",
		path:   "/v1/profile",
		body:   map[string]interface{}{"name": "x"},
		token:  token,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, testRequest{
		method: "PATCH",
		path:   "/v1/profile",
		body:   map[string]interface{}{"avatarUrl": "not-a-url"},
		token:  token,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.User
	require.NoError(t, config.DB.First(&unchanged, user.ID).Error)
	assert.Equal(t, "Test User", unchanged.Name)
	assert.Equal(t, "", unchanged.Image)
}
