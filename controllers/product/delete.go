package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/cache"
	"github.com/ojohpeters/Farmers-marketplace/models"
)

// DeleteProduct soft-deletes a product. Existing orders keep their own
// snapshots, so history stays intact.
// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB, products *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, uint(id)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
			return
		}
		products.Invalidate(c.Request.Context(), product.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
