package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

// GET /product/:productid
// Product detail. The id is bookmarked in the session so the frontend can
// send the user back to the last product they looked at.
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Tags").First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		sess := middleware.Current(c)
		sess.Data.LastViewedProduct = product.ProductID
		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		tags := make([]string, 0, len(product.Tags))
		for _, tag := range product.Tags {
			tags = append(tags, tag.TagName)
		}

		c.JSON(http.StatusOK, gin.H{"Product": gin.H{
			"productid":          product.ProductID,
			"productname":        product.ProductName,
			"productdescription": product.ProductDescription,
			"price":              product.Price,
			"user_id":            product.UserID,
			"image":              product.DecodeImage(),
			"tags":               tags,
		}})
	}
}
