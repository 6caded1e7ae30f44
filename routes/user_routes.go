package routes

import (
	"github.com/shopco/storefront/controllers"
	"github.com/shopco/storefront/middleware"

	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/verify-reset-otp", controllers.VerifyResetOTP)
	router.POST("/reset-password", controllers.ResetPassword)

	// Storefront shell
	router.GET("/banners", controllers.GetActiveBanners)
	router.GET("/products", controllers.GetProducts)

	// Protected routes (session required, role checked against the route table)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RouteAuthorizer())
	{
		// Profile
		protected.GET("/profile", controllers.GetProfile)
		protected.PATCH("/profile", controllers.UpdateProfile)

		// Address book
		protected.GET("/addresses", controllers.GetAddresses)
		protected.POST("/addresses", controllers.AddAddress)
		protected.PATCH("/addresses/:id", controllers.EditAddress)
		protected.DELETE("/addresses/:id", controllers.DeleteAddress)
		protected.POST("/addresses/default", controllers.SetDefaultAddress)

		// Activity history
		protected.GET("/orders", controllers.ListOrders)
		protected.GET("/orders/:id", controllers.GetOrderDetails)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)
		protected.GET("/reviews", controllers.ListReviews)

		// Checkout
		protected.POST("/checkout_sessions", controllers.CreateCheckoutSession)
	}
}
