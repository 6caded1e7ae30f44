package controllers

import (
	"strings"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the user's profile information
func GetProfile(c *gin.Context) {
	utils.LogInfo("GetProfile called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}

	userModel := user.(models.User)
	utils.LogInfo("Profile retrieved for user ID: %d", userModel.ID)
	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":         userModel.ID,
			"name":       userModel.Name,
			"email":      userModel.Email,
			"image":      userModel.Image,
			"created_at": userModel.CreatedAt,
			"updated_at": userModel.UpdatedAt,
		},
	})
}

// UpdateProfileRequest carries the updatable profile fields. Email and role
// are not part of this surface; any such keys in the payload are dropped
// silently rather than rejected.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateProfile handles display name and avatar updates
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}

	userModel := user.(models.User)
	utils.LogInfo("Updating profile for user ID: %d", userModel.ID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	errs := []utils.FieldValidationError{}
	updates := map[string]interface{}{}

	if req.Name != nil {
		if valid, msg := utils.ValidateDisplayName(*req.Name); !valid {
			errs = append(errs, utils.FieldValidationError{Field: "name", Message: msg})
		} else {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
	}

	if req.AvatarURL != nil {
		if valid, msg := utils.ValidateAvatarURL(*req.AvatarURL); !valid {
			errs = append(errs, utils.FieldValidationError{Field: "avatarUrl", Message: msg})
		} else {
			updates["image"] = strings.TrimSpace(*req.AvatarURL)
		}
	}

	if len(errs) > 0 {
		utils.LogError("Profile validation failed for user ID: %d: %v", userModel.ID, errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&userModel).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update profile for user ID: %d: %v", userModel.ID, err)
			utils.InternalServerError(c, "Failed to update profile", err.Error())
			return
		}
	}

	var updatedUser models.User
	if err := config.DB.First(&updatedUser, userModel.ID).Error; err != nil {
		utils.LogError("Failed to fetch updated profile for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to fetch updated profile", err.Error())
		return
	}

	utils.LogInfo("Profile updated successfully for user ID: %d", updatedUser.ID)
	utils.Success(c, "Profile updated successfully", gin.H{
		"user": gin.H{
			"id":         updatedUser.ID,
			"name":       updatedUser.Name,
			"email":      updatedUser.Email,
			"image":      updatedUser.Image,
			"updated_at": updatedUser.UpdatedAt,
		},
	})
}
