package uploadControllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/ai"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

// POST /upload/:userid
// Lists a new product from a multipart form: name, description, price and an
// image. Field problems come back as a per-field errors dict; the image is
// normalized to 200x200 and stored base64-encoded.
func UploadProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if !sess.Data.LoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to upload products"})
			return
		}

		userID, err := strconv.Atoi(c.Param("userid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		name := c.PostForm("productName")
		description := c.PostForm("productDescription")
		priceField := c.PostForm("productPrice")
		file, fileErr := c.FormFile("productImage")

		fieldErrors := map[string]string{
			"productName":        "",
			"productDescription": "",
			"productPrice":       "",
			"productImage":       "",
		}

		if name == "" || isNumeric(name) {
			fieldErrors["productName"] = "Invalid Product Name"
		}
		if description == "" || isNumeric(description) {
			fieldErrors["productDescription"] = "Invalid Product Description"
		}
		price, priceErr := strconv.ParseInt(priceField, 10, 64)
		if priceField == "" || priceErr != nil || price <= 0 {
			fieldErrors["productPrice"] = "Invalid Product Price"
		}
		if fileErr != nil {
			fieldErrors["productImage"] = "Missing Image File"
		}

		if anyErrors(fieldErrors) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors})
			return
		}

		ext := strings.ToLower(fileExt(file.Filename))
		if ext != "jpg" && ext != "jpeg" && ext != "png" {
			fieldErrors["productImage"] = "Invalid File Type"
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrors})
			return
		}
		if ext == "jpg" {
			ext = "jpeg"
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"productImage": "Unreadable Image File"}})
			return
		}
		defer src.Close()

		raw, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"productImage": "Unreadable Image File"}})
			return
		}

		normalized, err := normalizeImage(raw, ext)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"productImage": "Invalid Image Data"}})
			return
		}

		product := models.Product{
			ProductName:        name,
			ProductDescription: description,
			Price:              price,
			UserID:             uint(userID),
		}
		product.EncodeImage(normalized)

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"Misc": "Failed to save product"}})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": "Product Listed Successfully"})
	}
}

// POST /upload/aiprocess
// Runs the product photo through the vision model twice: once for a short
// title, once for a description.
func AIProcess(client *ai.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if !sess.Data.LoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to upload products"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Image File"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable Image File"})
			return
		}
		defer src.Close()

		raw, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable Image File"})
			return
		}

		encoded := base64.StdEncoding.EncodeToString(raw)

		title, err := client.Describe(c.Request.Context(), encoded, ai.TitlePrompt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI processing failed"})
			return
		}

		// The free tier rate-limits back-to-back completions.
		time.Sleep(2 * time.Second)

		description, err := client.Describe(c.Request.Context(), encoded, ai.DescriptionPrompt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI processing failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"title": title, "description": description})
	}
}

// isNumeric reports whether a field is digits (and dashes) only, which the
// listing form treats as not a real name or description.
func isNumeric(s string) bool {
	stripped := strings.ReplaceAll(s, "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func anyErrors(fields map[string]string) bool {
	for _, v := range fields {
		if v != "" {
			return true
		}
	}
	return false
}

func fileExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx+1:]
}
