package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/ojohpeters/Farmers-marketplace/controllers/cart"
	productcontroller "github.com/ojohpeters/Farmers-marketplace/controllers/product"
)

// SetupStoreRoutes registers the public storefront: catalog browsing and
// the shopper's session cart. No authentication; anonymous browsing and
// carting are allowed, checkout is where identity is required.
func SetupStoreRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", productcontroller.GetProducts(deps.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.DB, deps.Products))
	r.GET("/categories", productcontroller.GetAllCategories(deps.DB))

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("/items", cartControllers.AddItem(deps.Carts, deps.DB))
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateItem(deps.Carts))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}
}
