package controllers

import (
	"strings"
	"time"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the sign-up payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a new account and issues a session token
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	errs := []utils.FieldValidationError{}
	if valid, msg := utils.ValidateDisplayName(req.Name); !valid {
		errs = append(errs, utils.FieldValidationError{Field: "name", Message: msg})
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: msg})
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		errs = append(errs, utils.FieldValidationError{Field: "password", Message: msg})
	}
	if len(errs) > 0 {
		utils.LogError("Registration validation failed: %v", errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.LogError("Registration attempt with existing email: %s", email)
		utils.Conflict(c, "An account with this email already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", err.Error())
		return
	}

	user := models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Password:    hashed,
		Role:        "user",
		LastLoginAt: time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", err.Error())
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("User registered successfully: %d", user.ID)
	utils.Created(c, "Account created successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
