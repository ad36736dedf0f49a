package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/cache"
	"github.com/ojohpeters/Farmers-marketplace/models"
)

// UpdateProduct replaces every editable field; partial updates are not
// supported, matching the admin form which always submits the full record.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, products *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
			return
		}
		if !input.complete() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
			}
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Category = input.Category
		product.Quantity = input.Quantity
		product.Image = input.Image

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
			return
		}
		products.Invalidate(c.Request.Context(), product.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}
