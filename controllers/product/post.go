package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

func (in ProductInput) complete() bool {
	return in.Name != "" && in.Description != "" && in.Price > 0 &&
		in.Category != "" && in.Quantity > 0 && in.Image != ""
}

// CreateProduct adds a product to the catalog. All fields are required.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
			return
		}
		if !input.complete() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			Quantity:    input.Quantity,
			Image:       input.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
	}
}
