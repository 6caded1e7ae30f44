package routes

import (
	"github.com/shopco/storefront/controllers"
	"github.com/shopco/storefront/middleware"

	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes the admin routes. The /v1/admin prefix is
// listed in the route table, so the authorizer only lets the admin role
// through.
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RouteAuthorizer())
	{
		// User management
		admin.GET("/users", controllers.GetUsers)
		admin.PUT("/users/:id/block", controllers.ToggleUserBlock)
		admin.GET("/users/export", controllers.ExportUsers)

		// Banner management
		admin.GET("/banners", controllers.ListAllBanners)
		admin.POST("/banners", controllers.CreateBanner)
		admin.PUT("/banners/:id", controllers.UpdateBanner)
		admin.DELETE("/banners/:id", controllers.DeleteBanner)
	}
}
