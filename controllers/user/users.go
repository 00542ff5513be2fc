package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

type signupInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// POST /signup
// Registers a user. Field problems come back as an errors dict alongside
// "user": false so the frontend can render them per-field; a successful
// signup echoes the username.
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fieldErrors := map[string][]string{
			"firstname": {},
			"lastname":  {},
			"username":  {},
			"password":  {},
		}

		if len(input.Username) < 4 {
			fieldErrors["username"] = append(fieldErrors["username"], "Username must be at least 4 characters long")
		}
		if len(input.Password) <= 6 {
			fieldErrors["password"] = append(fieldErrors["password"], "Password must be at least 6 characters long")
		}
		if len(input.FirstName) == 0 {
			fieldErrors["firstname"] = append(fieldErrors["firstname"], "You need to add your first name")
		}

		if len(fieldErrors["username"]) > 0 || len(fieldErrors["password"]) > 0 || len(fieldErrors["firstname"]) > 0 {
			c.JSON(http.StatusOK, gin.H{"user": false, "errors": fieldErrors})
			return
		}

		user, err := models.HashPassword(input.Username, input.Password, input.FirstName, input.LastName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		if err := db.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				fieldErrors["username"] = append(fieldErrors["username"], "Username already taken")
				c.JSON(http.StatusOK, gin.H{"user": false, "errors": fieldErrors})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user.Username, "errors": fieldErrors})
	}
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /login
// Authenticates and stores the user id in the session. Returns the username,
// or the string "null" when the credentials don't check out.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := models.Authenticate(db, input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
			return
		}
		if user == nil {
			c.JSON(http.StatusOK, "null")
			return
		}

		sess := middleware.Current(c)
		sess.Data.UserID = user.ID

		// The session cookie has to go out with this response.
		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		c.JSON(http.StatusOK, user.Username)
	}
}

// POST /logout
// Destroys the whole session: user id, cart and all. Cache-Control: no-store
// keeps a quick login-after-logout from racing a cached response.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		sess.Destroy()

		c.Header("Cache-Control", "no-store")

		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}

		c.JSON(http.StatusOK, "Logged out")
	}
}

// GET /@me
// Lets the frontend check who is logged in.
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if !sess.Data.LoggedIn() {
			c.JSON(http.StatusUnauthorized, gin.H{"user": "null"})
			return
		}

		var user models.User
		if err := db.First(&user, sess.Data.UserID).Error; err != nil {
			// The session references a user that no longer exists.
			c.JSON(http.StatusUnauthorized, gin.H{"user": "null"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"firstname": user.FirstName,
			"lastname":  user.LastName,
		}})
	}
}

// GET /user/:userid
// Public profile: the user and their listings.
func Profile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.Preload("Products").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		products := make([]gin.H, 0, len(user.Products))
		for _, p := range user.Products {
			products = append(products, gin.H{
				"productid":          p.ProductID,
				"productname":        p.ProductName,
				"productdescription": p.ProductDescription,
				"price":              p.Price,
				"image":              p.DecodeImage(),
			})
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

// DELETE /user/:userid
// Removes a user and, through the FK cascade, their products. If the deleted
// user is the one logged in, the session goes too.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		result := db.Delete(&models.User{}, userID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		sess := middleware.Current(c)
		if sess.Data.UserID == uint(userID) {
			sess.Destroy()
			if err := middleware.Save(c); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "User deleted"})
	}
}
