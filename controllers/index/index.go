package indexControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

const pageSize = 20

// GET /
// Paginated product browse. The cursor lives in the session: ?page=next and
// ?page=previous move it, anything else resets it, and it never goes below
// zero.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		switch c.Query("page") {
		case "next":
			sess.Data.Page++
		case "previous":
			sess.Data.Page--
		default:
			sess.Data.Page = 0
		}
		if sess.Data.Page < 0 {
			sess.Data.Page = 0
		}

		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		var products []models.Product
		err := db.
			Offset(sess.Data.Page * pageSize).
			Limit(pageSize).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		output := make([]gin.H, 0, len(products))
		for _, p := range products {
			output = append(output, gin.H{
				"productid":          p.ProductID,
				"productname":        p.ProductName,
				"productdescription": p.ProductDescription,
				"price":              p.Price,
				"image":              p.DecodeImage(),
			})
		}

		c.JSON(http.StatusOK, gin.H{"Products": output, "page": sess.Data.Page})
	}
}
