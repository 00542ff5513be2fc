package productControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /v1/products/export
// Downloads the whole catalog as a spreadsheet. Images are left out; the
// base64 blobs are useless in a sheet.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Tags").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ProductID", "ProductName", "ProductDescription", "Price", "UserID", "Tags"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ProductID)
			row.AddCell().SetValue(p.ProductName)
			row.AddCell().SetValue(p.ProductDescription)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.UserID)

			var tagNames []string
			for _, tag := range p.Tags {
				tagNames = append(tagNames, tag.TagName)
			}
			row.AddCell().SetValue(strings.Join(tagNames, ","))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
