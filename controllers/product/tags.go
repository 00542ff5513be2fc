package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/ai"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

// POST /product/:productid/tags/generate
// Asks the AI model for tags based on the product's description and attaches
// them, creating tag rows as needed. Requires a logged-in session.
func GenerateTags(db *gorm.DB, client *ai.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if !sess.Data.LoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to tag products"})
			return
		}

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

		description := product.ProductDescription
		if description == "" {
			description = product.ProductName
		}

		names, err := client.SuggestTags(c.Request.Context(), description)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Tag generation failed"})
			return
		}

		attached := make([]string, 0, len(names))
		for _, name := range names {
			tag := models.Tag{TagName: name}
			if err := db.Where("tag_name = ?", name).FirstOrCreate(&tag).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tags"})
				return
			}
			if err := db.Model(&product).Association("Tags").Append(&tag); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tags"})
				return
			}
			attached = append(attached, tag.TagName)
		}

		c.JSON(http.StatusOK, gin.H{"tags": attached})
	}
}
