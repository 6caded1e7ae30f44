package controllers

import (
	"strings"
	"time"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const resetOTPTTL = 15 * time.Minute

// ForgotPasswordRequest represents the forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword generates a reset OTP and emails it. The response is the
// same whether or not the account exists.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Password reset attempt failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", "Please provide a valid email address")
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Password reset attempt failed - invalid email: %s", req.Email)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.LogInfo("Password reset requested for unknown email: %s", email)
		// Do not reveal whether the account exists
		utils.Success(c, "If an account exists for this email, a reset code has been sent", nil)
		return
	}

	otp := utils.GenerateOTP()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"otp":        otp,
		"otp_expiry": time.Now().Add(resetOTPTTL),
	}).Error; err != nil {
		utils.LogError("Failed to store reset OTP for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to process reset request", err.Error())
		return
	}

	if err := utils.SendPasswordResetOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send reset OTP to user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to send reset code", err.Error())
		return
	}

	utils.LogInfo("Reset OTP sent for user ID: %d", user.ID)
	utils.Success(c, "If an account exists for this email, a reset code has been sent", nil)
}

// VerifyResetOTPRequest represents the OTP verification payload
type VerifyResetOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// VerifyResetOTP checks the OTP and marks the session reset-eligible
func VerifyResetOTP(c *gin.Context) {
	utils.LogInfo("VerifyResetOTP called")

	var req VerifyResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid OTP verification request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.LogError("OTP verification for unknown email: %s", email)
		utils.BadRequest(c, "Invalid or expired code", nil)
		return
	}

	if user.OTP == "" || user.OTP != req.OTP || time.Now().After(user.OTPExpiry) {
		utils.LogError("Invalid or expired OTP for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid or expired code", nil)
		return
	}

	session := sessions.Default(c)
	session.Set("reset_email", email)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save reset session for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to verify code", err.Error())
		return
	}

	utils.LogInfo("Reset OTP verified for user ID: %d", user.ID)
	utils.Success(c, "Code verified successfully", nil)
}

// ResetPasswordRequest represents the reset password payload
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword verifies the OTP one final time and updates the password
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid reset password request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.LogError("Reset password validation failed: %s", msg)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": []utils.FieldValidationError{{Field: "new_password", Message: msg}}})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.LogError("Password reset for unknown email: %s", email)
		utils.BadRequest(c, "Invalid or expired code", nil)
		return
	}

	if user.OTP == "" || user.OTP != req.OTP || time.Now().After(user.OTPExpiry) {
		utils.LogError("Invalid or expired OTP on reset for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid or expired code", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash new password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", err.Error())
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"password":   hashed,
		"otp":        "",
		"otp_expiry": time.Time{},
	}).Error; err != nil {
		utils.LogError("Failed to update password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reset password", err.Error())
		return
	}

	session := sessions.Default(c)
	session.Delete("reset_email")
	_ = session.Save()

	utils.LogInfo("Password reset successfully for user ID: %d", user.ID)
	utils.Success(c, "Password reset successfully", nil)
}
