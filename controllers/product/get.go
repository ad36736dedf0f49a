package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/cache"
	"github.com/ojohpeters/Farmers-marketplace/models"
)

// GetProducts lists the catalog, newest first, optionally filtered by
// category and/or a name/description search term.
// GET /products?category=&search=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.Product{}).Order("created_at DESC")

		if category := c.Query("category"); category != "" {
			q = q.Where("category = ?", category)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + search + "%"
			q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
		}

		var products []models.Product
		if err := q.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// GetProductByID serves single-product lookups through the read cache.
// GET /products/:id
func GetProductByID(db *gorm.DB, products *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID"})
			return
		}

		product, err := products.Get(c.Request.Context(), uint(id), func() (*models.Product, error) {
			var p models.Product
			if err := db.First(&p, uint(id)).Error; err != nil {
				return nil, err
			}
			return &p, nil
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}
