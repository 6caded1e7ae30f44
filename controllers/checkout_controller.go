package controllers

import (
	"fmt"
	"math"
	"net/http"
	"os"

	"github.com/shopco/storefront/config"
	"github.com/shopco/storefront/models"
	"github.com/shopco/storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// CheckoutSessionRequest identifies the order to pay for
type CheckoutSessionRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// paiseAmount converts a total to the provider's smallest currency unit.
// Rounds rather than truncates: 19.99 maps to 1999, not 1998.
func paiseAmount(total float64) int {
	return int(math.Round(total * 100))
}

// CreateCheckoutSession creates a hosted payment session with the payment
// provider and answers with a 303 redirect to the hosted page. Provider
// failures surface as a 500 with a generic message; the call is never
// retried here.
func CreateCheckoutSession(c *gin.Context) {
	utils.LogInfo("CreateCheckoutSession called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid checkout request for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request. order_id is required", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND user_id = ?", req.OrderID, userModel.ID).First(&order).Error; err != nil {
		utils.LogError("Order not found for checkout - order ID: %d, user ID: %d", req.OrderID, userModel.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	if order.Status != models.OrderStatusPending {
		utils.LogError("Checkout attempted for non-pending order ID: %d, status: %s", order.ID, order.Status)
		utils.BadRequest(c, "Payment for this order has already been completed", nil)
		return
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	amountPaise := paiseAmount(order.Total)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	linkData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"reference_id":    fmt.Sprintf("order_%d_%s", order.ID, uuid.New().String()[:8]),
		"description":     fmt.Sprintf("Order #%d", order.ID),
		"callback_url":    fmt.Sprintf("%s/success?order_id=%d", baseURL, order.ID),
		"callback_method": "get",
		"customer": map[string]interface{}{
			"name":  userModel.Name,
			"email": userModel.Email,
		},
	}

	link, err := client.PaymentLink.Create(linkData, nil)
	if err != nil {
		utils.LogError("Failed to create checkout session for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create checkout session", nil)
		return
	}

	hostedURL, ok := link["short_url"].(string)
	if !ok || hostedURL == "" {
		utils.LogError("Checkout session for order ID: %d has no hosted URL", order.ID)
		utils.InternalServerError(c, "Failed to create checkout session: missing URL", nil)
		return
	}

	if err := config.DB.Model(&order).Update("payment_ref", fmt.Sprintf("%v", link["id"])).Error; err != nil {
		utils.LogError("Failed to record payment reference for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order details", nil)
		return
	}

	utils.LogInfo("Checkout session created for order ID: %d", order.ID)
	c.Redirect(http.StatusSeeOther, hostedURL)
}
