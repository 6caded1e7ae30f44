package controllers

import (
	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAddresses returns all addresses for the authenticated user, default
// first, then newest first.
func GetAddresses(c *gin.Context) {
	utils.LogInfo("GetAddresses called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)
	utils.LogInfo("Fetching addresses for user ID: %d", userModel.ID)

	var addresses []models.Address
	if err := config.DB.
		Where("user_id = ?", userModel.ID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&addresses).Error; err != nil {
		utils.LogError("Failed to fetch addresses for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", err.Error())
		return
	}

	utils.LogInfo("Successfully retrieved %d addresses for user ID: %d", len(addresses), userModel.ID)
	utils.Success(c, "Addresses retrieved successfully", gin.H{
		"addresses": addresses,
	})
}

// SetDefaultAddressRequest identifies the address to promote
type SetDefaultAddressRequest struct {
	ID uint `json:"id" binding:"required"`
}

// SetDefaultAddress promotes one address to be the user's default. All other
// addresses of the same user are demoted in the same transaction; addresses
// of other users are never touched.
func SetDefaultAddress(c *gin.Context) {
	utils.LogInfo("SetDefaultAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	var req SetDefaultAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Processing default address setting for user ID: %d, address ID: %d", userModel.ID, req.ID)

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", req.ID, userModel.ID).First(&address).Error; err != nil {
		utils.LogError("Address not found for user ID: %d, address ID: %d", userModel.ID, req.ID)
		utils.NotFound(c, "Address not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).Where("user_id = ? AND id <> ?", userModel.ID, address.ID).Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&address).Update("is_default", true).Error
	})
	if err != nil {
		utils.LogError("Failed to set default address for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to set default address", err.Error())
		return
	}

	utils.LogInfo("Default address set successfully for user ID: %d, address ID: %d", userModel.ID, address.ID)
	utils.Success(c, "Default address set successfully", gin.H{
		"address": address,
	})
}
