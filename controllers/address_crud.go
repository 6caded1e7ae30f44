package controllers

import (
	"strings"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddAddressRequest is the payload for creating an address
type AddAddressRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	District    string `json:"district"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	IsDefault   bool   `json:"isDefault"`
}

// AddAddress adds a new address for the user
func AddAddress(c *gin.Context) {
	utils.LogInfo("AddAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}

	userModel := user.(models.User)
	utils.LogInfo("Processing address addition for user ID: %d", userModel.ID)

	var req AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidateAddressFields(req.Name, req.Phone, req.AddressLine, req.City, req.District, req.Province, req.PostalCode)
	if len(errs) > 0 {
		utils.LogError("Address validation failed for user ID: %d: %v", userModel.ID, errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	address := models.Address{
		UserID:      userModel.ID,
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		AddressLine: strings.TrimSpace(req.AddressLine),
		City:        strings.TrimSpace(req.City),
		District:    strings.TrimSpace(req.District),
		Province:    strings.TrimSpace(req.Province),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		IsDefault:   req.IsDefault,
	}

	// The clear + insert pair must commit together so that no reader ever
	// observes two defaults for the same user.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userModel.ID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		utils.LogError("Failed to add address for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to add address", err.Error())
		return
	}

	utils.LogInfo("Address added successfully for user ID: %d, address ID: %d", userModel.ID, address.ID)
	utils.Created(c, "Address added successfully", gin.H{
		"address": address,
	})
}

// EditAddressRequest is the payload for a partial address update. Pointer
// fields distinguish "omitted" from "set to empty".
type EditAddressRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	AddressLine *string `json:"addressLine"`
	City        *string `json:"city"`
	District    *string `json:"district"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postalCode"`
	IsDefault   *bool   `json:"isDefault"`
}

// EditAddress edits an existing address for the user
func EditAddress(c *gin.Context) {
	utils.LogInfo("EditAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}

	userModel := user.(models.User)
	addressID := c.Param("id")
	utils.LogInfo("Processing address edit for user ID: %d, address ID: %s", userModel.ID, addressID)

	var req EditAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	// Ownership check happens before any mutation. A foreign address reads
	// the same as a missing one.
	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, userModel.ID).First(&address).Error; err != nil {
		utils.LogError("Address not found for user ID: %d, address ID: %s", userModel.ID, addressID)
		utils.NotFound(c, "Address not found")
		return
	}

	// Merge provided fields over existing values, then validate the result
	if req.Name != nil {
		address.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		address.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.AddressLine != nil {
		address.AddressLine = strings.TrimSpace(*req.AddressLine)
	}
	if req.City != nil {
		address.City = strings.TrimSpace(*req.City)
	}
	if req.District != nil {
		address.District = strings.TrimSpace(*req.District)
	}
	if req.Province != nil {
		address.Province = strings.TrimSpace(*req.Province)
	}
	if req.PostalCode != nil {
		address.PostalCode = strings.TrimSpace(*req.PostalCode)
	}

	errs := utils.ValidateAddressFields(address.Name, address.Phone, address.AddressLine, address.City, address.District, address.Province, address.PostalCode)
	if len(errs) > 0 {
		utils.LogError("Address validation failed for user ID: %d: %v", userModel.ID, errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault != nil && *req.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ? AND id <> ?", userModel.ID, address.ID).Update("is_default", false).Error; err != nil {
				return err
			}
			address.IsDefault = true
		} else if req.IsDefault != nil {
			address.IsDefault = false
		}
		return tx.Save(&address).Error
	})
	if err != nil {
		utils.LogError("Failed to update address for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to update address", err.Error())
		return
	}

	utils.LogInfo("Address updated successfully for user ID: %d, address ID: %d", userModel.ID, address.ID)
	utils.Success(c, "Address updated successfully", gin.H{
		"address": address,
	})
}

// DeleteAddress deletes an address for the user. Deleting the current
// default does not promote another address; the system tolerates zero
// defaults and promotion is always an explicit SetDefaultAddress call.
func DeleteAddress(c *gin.Context) {
	utils.LogInfo("DeleteAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)
	addressID := c.Param("id")
	utils.LogInfo("Processing address deletion for user ID: %d, address ID: %s", userModel.ID, addressID)

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, userModel.ID).First(&address).Error; err != nil {
		utils.LogError("Address not found or already deleted for user ID: %d, address ID: %s", userModel.ID, addressID)
		utils.NotFound(c, "Address not found or already deleted")
		return
	}

	if err := config.DB.Delete(&address).Error; err != nil {
		utils.LogError("Failed to delete address for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to delete address", err.Error())
		return
	}

	utils.LogInfo("Address deleted successfully for user ID: %d, address ID: %d", userModel.ID, address.ID)
	utils.Success(c, "Address deleted successfully", gin.H{
		"ok": true,
	})
}
