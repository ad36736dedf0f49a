package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
// GET /admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "Category", "Quantity", "Image", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(p.ID))
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write Excel file"})
		}
	}
}

// ImportProductsFromExcel bulk-creates or updates products from an
// uploaded sheet in the export format. Rows with an ID update the existing
// product; rows without create a new one. Malformed rows are skipped.
// POST /admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to open Excel file"})
			return
		}
		defer f.Close()

		xlFile, err := xlsx.OpenReaderAt(f, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		created, updated, skipped := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			category := get(4)
			quantity, qtyErr := strconv.Atoi(get(5))
			image := get(6)

			if name == "" || priceErr != nil || qtyErr != nil || quantity < 0 {
				skipped++
				continue
			}

			product := models.Product{
				Name:        name,
				Description: description,
				Price:       price,
				Category:    category,
				Quantity:    quantity,
				Image:       image,
			}

			if idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skipped++
					continue
				}
				var existing models.Product
				if err := db.First(&existing, uint(id)).Error; err == nil {
					product.ID = existing.ID
					product.CreatedAt = existing.CreatedAt
					if err := db.Save(&product).Error; err == nil {
						updated++
						continue
					}
					skipped++
					continue
				}
			}

			if err := db.Create(&product).Error; err == nil {
				created++
			} else {
				skipped++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"created": created,
			"updated": updated,
			"skipped": skipped,
		})
	}
}
