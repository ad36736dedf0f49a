package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/cache"
	"github.com/ojohpeters/Farmers-marketplace/cart"
	orderControllers "github.com/ojohpeters/Farmers-marketplace/controllers/order"
	"github.com/ojohpeters/Farmers-marketplace/events"
	"github.com/ojohpeters/Farmers-marketplace/orders"
)

// Deps carries everything the route groups need wired in.
type Deps struct {
	DB        *gorm.DB
	Carts     *cart.Manager
	Orders    *orders.Service
	Hub       *orderControllers.Hub
	Publisher *events.Publisher
	Products  *cache.ProductCache
}

// SetupRoutes is the single entry-point that wires up the auth, store,
// order and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public storefront: catalog browsing + session carts
	SetupStoreRoutes(r, deps)

	// Checkout and order tracking
	SetupOrderRoutes(r, deps)

	// Admin back-office (API-key protected)
	SetupAdminRoutes(r, deps)
}
