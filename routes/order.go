package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/ojohpeters/Farmers-marketplace/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	ordersGroup := r.Group("/orders")
	{
		// Checkout submission
		ordersGroup.POST("", orderControllers.PlaceOrderHandler(deps.Orders, deps.Hub, deps.Publisher))

		// Order listing and tracking (numeric ID or tracking ID)
		ordersGroup.GET("", orderControllers.GetOrdersHandler(deps.Orders))
		ordersGroup.GET("/:id", orderControllers.GetOrderHandler(deps.Orders))

		// Real-time feed for the admin dashboard
		ordersGroup.GET("/ws", deps.Hub.Handler)
	}
}
