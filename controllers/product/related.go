package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

const relatedLimit = 4

// POST /product/:productid/related
// Returns up to four products sharing at least one tag with the given
// product, excluding the product itself.
func RelatedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var related []models.Product
		err = db.
			Where("product_id <> ?", product.ProductID).
			Where(`product_id IN (
				SELECT other.product_product_id FROM products_tags other
				WHERE other.tag_tag_id IN (
					SELECT own.tag_tag_id FROM products_tags own
					WHERE own.product_product_id = ?
				)
			)`, product.ProductID).
			Limit(relatedLimit).
			Find(&related).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve related products"})
			return
		}

		output := make([]gin.H, 0, len(related))
		for _, p := range related {
			output = append(output, gin.H{
				"productid":          p.ProductID,
				"productname":        p.ProductName,
				"productdescription": p.ProductDescription,
				"price":              p.Price,
				"user_id":            p.UserID,
				"image":              p.DecodeImage(),
			})
		}

		c.JSON(http.StatusOK, gin.H{"RelatedProducts": output})
	}
}
