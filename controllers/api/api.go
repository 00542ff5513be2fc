// Package apiControllers serves the read-only /v1 JSON API the single-page
// frontend browses with.
package apiControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

type userJSON struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type productJSON struct {
	ProductID          uint   `json:"productid"`
	ProductName        string `json:"productname"`
	ProductDescription string `json:"productdescription"`
	Price              int64  `json:"price"`
	UserID             uint   `json:"user_id"`
	Image              string `json:"image,omitempty"`
}

func serializeUser(u *models.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func serializeProduct(p *models.Product, withImage bool) productJSON {
	out := productJSON{
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		Price:              p.Price,
		UserID:             p.UserID,
	}
	if withImage {
		out.Image = p.DecodeImage()
	}
	return out
}

// GET /v1/users
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		output := make([]userJSON, 0, len(users))
		for i := range users {
			output = append(output, serializeUser(&users[i]))
		}
		c.JSON(http.StatusOK, gin.H{"Users": output})
	}
}

// GET /v1/users/:userid
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findUser(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"User": serializeUser(user)})
	}
}

// GET /v1/users/:userid/products
func GetUserProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := findUser(c, db, "Products")
		if !ok {
			return
		}

		products := make([]productJSON, 0, len(user.Products))
		for i := range user.Products {
			products = append(products, serializeProduct(&user.Products[i], true))
		}

		c.JSON(http.StatusOK, gin.H{"User": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"firstname": user.FirstName,
			"lastname":  user.LastName,
			"products":  products,
		}})
	}
}

// GET /v1/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return listProducts(db, false)
}

// GET /v1/productimages
// Same listing with images decoded for direct display.
func GetProductImages(db *gorm.DB) gin.HandlerFunc {
	return listProducts(db, true)
}

func listProducts(db *gorm.DB, withImage bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		output := make([]productJSON, 0, len(products))
		for i := range products {
			output = append(output, serializeProduct(&products[i], withImage))
		}
		c.JSON(http.StatusOK, gin.H{"Products": output})
	}
}

// GET /v1/products/:productid
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"Product": serializeProduct(product, false)})
	}
}

// GET /v1/productsimages/:productid
// Single product with its image and the seller's username.
func GetProductWithImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := findProduct(c, db)
		if !ok {
			return
		}

		var seller models.User
		username := ""
		if err := db.First(&seller, product.UserID).Error; err == nil {
			username = seller.Username
		}

		c.JSON(http.StatusOK, gin.H{"Product": gin.H{
			"productid":          product.ProductID,
			"productname":        product.ProductName,
			"productdescription": product.ProductDescription,
			"price":              product.Price,
			"user_id":            product.UserID,
			"image":              product.DecodeImage(),
			"username":           username,
		}})
	}
}

func findUser(c *gin.Context, db *gorm.DB, preloads ...string) (*models.User, bool) {
	userID, err := strconv.Atoi(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}

	query := db
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var user models.User
	if err := query.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return nil, false
	}
	return &user, true
}

func findProduct(c *gin.Context, db *gorm.DB) (*models.Product, bool) {
	productID, err := strconv.Atoi(c.Param("productid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return nil, false
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return nil, false
	}
	return &product, true
}
