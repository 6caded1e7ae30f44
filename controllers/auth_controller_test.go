package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/register",
		body: map[string]interface{}{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "Password1",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	w = doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/login",
		body: map[string]interface{}{
			"email":    "new@example.com",
			"password": "Password1",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	data = body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	userData := data["user"].(map[string]interface{})
	assert.Equal(t, "user", userData["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "taken@example.com", "user")

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/register",
		body: map[string]interface{}{
			"name":     "Someone Else",
			"email":    "taken@example.com",
			"password": "Password1",
		},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterWeakPassword(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/register",
		body: map[string]interface{}{
			"name":     "Weak",
			"email":    "weak@example.com",
			"password": "short",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "wrongpw@example.com", "user")

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/login",
		body: map[string]interface{}{
			"email":    "wrongpw@example.com",
			"password": "NotThePassword1",
		},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBlockedUser(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "blocked@example.com", "user")
	require.NoError(t, config.DB.Model(&user).Update("is_blocked", true).Error)

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/login",
		body: map[string]interface{}{
			"email":    "blocked@example.com",
			"password": "Password1",
		},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResetPasswordWithOTP(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "reset@example.com", "user")

	require.NoError(t, config.DB.Model(&user).Updates(map[string]interface{}{
		"otp":        "123456",
		"otp_expiry": time.Now().Add(10 * time.Minute),
	}).Error)

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/verify-reset-otp",
		body: map[string]interface{}{
			"email": "reset@example.com",
			"otp":   "123456",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/reset-password",
		body: map[string]interface{}{
			"email":        "reset@example.com",
			"otp":          "123456",
			"new_password": "Fresh-Pass2",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, config.DB.First(&updated, user.ID).Error)
	assert.True(t, utils.CheckPassword("Fresh-Pass2", updated.Password))
	assert.Empty(t, updated.OTP)
}

func TestResetPasswordRejectsBadOTP(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "bad-otp@example.com", "user")

	require.NoError(t, config.DB.Model(&user).Updates(map[string]interface{}{
		"otp":        "123456",
		"otp_expiry": time.Now().Add(10 * time.Minute),
	}).Error)

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/reset-password",
		body: map[string]interface{}{
			"email":        "bad-otp@example.com",
			"otp":          "999999",
			"new_password": "Fresh-Pass2",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.User
	require.NoError(t, config.DB.First(&unchanged, user.ID).Error)
	assert.True(t, utils.CheckPassword("Password1", unchanged.Password))
}

func TestResetPasswordRejectsExpiredOTP(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "expired-otp@example.com", "user")

	require.NoError(t, config.DB.Model(&user).Updates(map[string]interface{}{
		"otp":        "123456",
		"otp_expiry": time.Now().Add(-1 * time.Minute),
	}).Error)

	w := doRequest(t, router, testRequest{
		method: "POST",
		path:   "/v1/reset-password",
		body: map[string]interface{}{
			"email":        "expired-otp@example.com",
			"otp":          "123456",
			"new_password": "Fresh-Pass2",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
