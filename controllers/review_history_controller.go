package controllers

import (
	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

// ListReviews returns the user's review history, newest first
func ListReviews(c *gin.Context) {
	utils.LogInfo("ListReviews called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	var reviews []models.Review
	if err := config.DB.
		Preload("Product").
		Where("user_id = ?", userModel.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to fetch reviews", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d reviews for user ID: %d", len(reviews), userModel.ID)
	utils.Success(c, "Reviews retrieved successfully", gin.H{
		"reviews": reviews,
	})
}
