package controllers

import (
	"fmt"
	"strconv"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GetUsers handles user listing with search, pagination, and sorting
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	order := c.DefaultQuery("order", "desc")
	search := c.Query("search")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	query := config.DB.Model(&models.User{})
	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("email LIKE ? OR name LIKE ?", searchTerm, searchTerm)
	}
	query = query.Order(fmt.Sprintf("created_at %s", order))

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	summaries := make([]gin.H, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, gin.H{
			"id":            u.ID,
			"name":          u.Name,
			"email":         u.Email,
			"role":          u.Role,
			"is_blocked":    u.IsBlocked,
			"last_login_at": u.LastLoginAt,
			"created_at":    u.CreatedAt,
		})
	}

	utils.LogInfo("Retrieved %d users (page %d)", len(users), page)
	utils.SuccessWithPagination(c, "Users retrieved successfully", gin.H{"users": summaries}, total, page, limit)
}

// ToggleUserBlock blocks or unblocks a user account
func ToggleUserBlock(c *gin.Context) {
	utils.LogInfo("ToggleUserBlock called")

	userID := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.LogError("User not found: %s", userID)
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", !user.IsBlocked).Error; err != nil {
		utils.LogError("Failed to update block status for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	utils.LogInfo("User %d block status set to %v", user.ID, !user.IsBlocked)
	utils.Success(c, "User updated successfully", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"is_blocked": !user.IsBlocked,
		},
	})
}

// ExportUsers writes the user list as an Excel sheet
func ExportUsers(c *gin.Context) {
	utils.LogInfo("ExportUsers called")

	var users []models.User
	if err := config.DB.Order("created_at desc").Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Users")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	headers := []string{"ID", "Name", "Email", "Role", "Blocked", "Registered"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, u := range users {
		row := sheet.AddRow()
		row.AddCell().SetString(strconv.Itoa(int(u.ID)))
		row.AddCell().SetString(u.Name)
		row.AddCell().SetString(u.Email)
		row.AddCell().SetString(u.Role)
		row.AddCell().SetString(strconv.FormatBool(u.IsBlocked))
		row.AddCell().SetString(u.CreatedAt.Format("2006-01-02"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=users.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
}
