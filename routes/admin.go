package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/ojohpeters/Farmers-marketplace/controllers/order"
	productcontroller "github.com/ojohpeters/Farmers-marketplace/controllers/product"
	userControllers "github.com/ojohpeters/Farmers-marketplace/controllers/user"
	"github.com/ojohpeters/Farmers-marketplace/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// back-office API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB, deps.Products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB, deps.Products))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		// Category management
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		// Order management
		adminGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))

		// User management
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))
		adminGroup.PUT("/users/:id/role", userControllers.UpdateUserRole(deps.DB))
	}
}
