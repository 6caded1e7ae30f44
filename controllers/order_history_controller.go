package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// ListOrders returns the user's order history, newest first
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	var orders []models.Order
	if err := config.DB.
		Preload("Items.Product").
		Where("user_id = ?", userModel.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", userModel.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.LogInfo("Retrieved %d orders for user ID: %d", len(orders), userModel.ID)
	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders": orders,
	})
}

// GetOrderDetails returns one order owned by the user
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Items.Product").
		Preload("Address").
		Where("id = ? AND user_id = ?", orderID, userModel.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found for user ID: %d, order ID: %s", userModel.ID, orderID)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{
		"order": order,
	})
}

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID in invoice request: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items.Product").
		Preload("Address").
		Where("id = ? AND user_id = ?", orderID, userModel.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found for invoice - order ID: %d, user ID: %d", orderID, userModel.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Shopco")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Status: "+order.Status)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, userModel.Name)
	pdf.Ln(6)
	pdf.Cell(100, 8, userModel.Email)
	pdf.Ln(8)

	if order.AddressID != 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Shipping Address:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, order.Address.AddressLine)
		pdf.Ln(6)
		pdf.Cell(100, 8, order.Address.City+", "+order.Address.District+", "+order.Address.Province+" "+order.Address.PostalCode)
		pdf.Ln(10)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.CellFormat(80, 8, item.Product.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", order.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate invoice PDF for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", order.ID))
	c.Data(200, "application/pdf", buf.Bytes())
}
