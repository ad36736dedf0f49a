package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojohpeters/Farmers-marketplace/events"
	"github.com/ojohpeters/Farmers-marketplace/models"
	"github.com/ojohpeters/Farmers-marketplace/orders"
)

// PlaceOrderRequest is the checkout submission boundary. Field names are
// camelCase for compatibility with the storefront client.
type PlaceOrderRequest struct {
	UserID          string                 `json:"userId"`
	User            orders.UserSnapshot    `json:"user"`
	Items           []orders.Line          `json:"items"`
	Total           float64                `json:"total"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders
func PlaceOrderHandler(svc *orders.Service, hub *Hub, publisher *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
			return
		}

		order, err := svc.PlaceOrder(c.Request.Context(), orders.PlaceOrderInput{
			UserID:          req.UserID,
			User:            req.User,
			Items:           req.Items,
			Total:           req.Total,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"success": false, "error": err.Error()})
			return
		}

		// Both notifications are best-effort; the order is already committed.
		hub.Broadcast(order)
		publisher.OrderCreated(c.Request.Context(), order)

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
	}
}

// GET /orders?userId=&status=
func GetOrdersHandler(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var status models.OrderStatus
		if s := c.Query("status"); s != "" {
			parsed, err := models.ParseOrderStatus(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
				return
			}
			status = parsed
		}

		list, err := svc.ListOrders(c.Request.Context(), c.Query("userId"), status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

// GET /orders/:id — accepts a numeric order ID or a tracking ID.
func GetOrderHandler(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(statusForError(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatusHandler(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
			return
		}

		order, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(statusForError(err), gin.H{"success": false, "error": err.Error()})
			return
		}

		updated, err := svc.SetStatus(c.Request.Context(), order.ID, status)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
	}
}

func statusForError(err error) int {
	switch {
	case orders.IsValidation(err):
		return http.StatusBadRequest
	case orders.IsNotFound(err):
		return http.StatusNotFound
	case orders.IsInsufficientStock(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
