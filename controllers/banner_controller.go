package controllers

import (
	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
)

// GetActiveBanners returns the active banners for the storefront layout,
// ordered by sort order.
func GetActiveBanners(c *gin.Context) {
	utils.LogInfo("GetActiveBanners called")

	position := c.Query("position")

	query := config.DB.Where("active = ?", true)
	if position != "" {
		query = query.Where("position = ?", position)
	}

	var banners []models.Banner
	if err := query.Order("sort_order ASC").Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Failed to fetch banners", err.Error())
		return
	}

	utils.Success(c, "Banners retrieved successfully", gin.H{
		"banners": banners,
	})
}

// BannerRequest is the admin payload for creating or updating a banner
type BannerRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required"`
	LinkURL   string `json:"link_url"`
	Position  string `json:"position"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

// CreateBanner creates a banner (admin only)
func CreateBanner(c *gin.Context) {
	utils.LogInfo("CreateBanner called")

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid banner request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	banner := models.Banner{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Position:  req.Position,
		SortOrder: req.SortOrder,
		Active:    true,
	}
	if banner.Position == "" {
		banner.Position = "top"
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if err := config.DB.Create(&banner).Error; err != nil {
		utils.LogError("Failed to create banner: %v", err)
		utils.InternalServerError(c, "Failed to create banner", err.Error())
		return
	}

	utils.LogInfo("Banner created: %d", banner.ID)
	utils.Created(c, "Banner created successfully", gin.H{
		"banner": banner,
	})
}

// UpdateBanner updates a banner (admin only)
func UpdateBanner(c *gin.Context) {
	utils.LogInfo("UpdateBanner called")

	bannerID := c.Param("id")

	var banner models.Banner
	if err := config.DB.First(&banner, bannerID).Error; err != nil {
		utils.LogError("Banner not found: %s", bannerID)
		utils.NotFound(c, "Banner not found")
		return
	}

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid banner request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	banner.Title = req.Title
	banner.ImageURL = req.ImageURL
	banner.LinkURL = req.LinkURL
	if req.Position != "" {
		banner.Position = req.Position
	}
	banner.SortOrder = req.SortOrder
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if err := config.DB.Save(&banner).Error; err != nil {
		utils.LogError("Failed to update banner %d: %v", banner.ID, err)
		utils.InternalServerError(c, "Failed to update banner", err.Error())
		return
	}

	utils.Success(c, "Banner updated successfully", gin.H{
		"banner": banner,
	})
}

// DeleteBanner removes a banner (admin only)
func DeleteBanner(c *gin.Context) {
	utils.LogInfo("DeleteBanner called")

	bannerID := c.Param("id")

	var banner models.Banner
	if err := config.DB.First(&banner, bannerID).Error; err != nil {
		utils.LogError("Banner not found: %s", bannerID)
		utils.NotFound(c, "Banner not found")
		return
	}

	if err := config.DB.Delete(&banner).Error; err != nil {
		utils.LogError("Failed to delete banner %d: %v", banner.ID, err)
		utils.InternalServerError(c, "Failed to delete banner", err.Error())
		return
	}

	utils.Success(c, "Banner deleted successfully", gin.H{
		"ok": true,
	})
}

// ListAllBanners returns every banner for the admin dashboard
func ListAllBanners(c *gin.Context) {
	utils.LogInfo("ListAllBanners called")

	var banners []models.Banner
	if err := config.DB.Order("sort_order ASC").Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Failed to fetch banners", err.Error())
		return
	}

	utils.Success(c, "Banners retrieved successfully", gin.H{
		"banners": banners,
	})
}
