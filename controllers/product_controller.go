package controllers

import (
	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

// GetProducts lists active products for the storefront
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}
