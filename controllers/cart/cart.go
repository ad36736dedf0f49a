package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/cart"
	"github.com/ojohpeters/Farmers-marketplace/models"
)

// SessionHeader carries the shopper's cart session ID. The server issues
// one on first use and echoes it back on every cart response.
const SessionHeader = "X-Cart-Session"

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	// Zero or negative removes the item, matching the reducer semantics.
	Quantity int `json:"quantity"`
}

func session(c *gin.Context, manager *cart.Manager) string {
	id := c.GetHeader(SessionHeader)
	if id == "" || !manager.Has(id) {
		id = manager.NewSession()
	}
	c.Header(SessionHeader, id)
	return id
}

// GET /cart
func GetCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session(c, manager)
		state, _ := manager.Get(id)
		c.JSON(http.StatusOK, state)
	}
}

// POST /cart/items
func AddItem(manager *cart.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Snapshot the product now; the cart keeps this copy even if the
		// catalog changes later. Stock is not checked here, only at checkout.
		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		id := session(c, manager)
		state, _ := manager.Apply(id, func(s cart.State) cart.State {
			return cart.Add(s, product, input.Quantity)
		})
		c.JSON(http.StatusOK, state)
	}
}

// PUT /cart/items/:product_id
func UpdateItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := session(c, manager)
		state, _ := manager.Apply(id, func(s cart.State) cart.State {
			return cart.UpdateQuantity(s, uint(productID), input.Quantity)
		})
		c.JSON(http.StatusOK, state)
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		id := session(c, manager)
		state, _ := manager.Apply(id, func(s cart.State) cart.State {
			return cart.Remove(s, uint(productID))
		})
		c.JSON(http.StatusOK, state)
	}
}

// DELETE /cart
func ClearCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session(c, manager)
		state, _ := manager.Apply(id, cart.Clear)
		c.JSON(http.StatusOK, state)
	}
}
