package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/user"
)

// SetupUserRoutes registers signup, login/logout and profile endpoints.
func SetupUserRoutes(r *gin.Engine, s Services) {
	r.POST("/signup", userControllers.Signup(s.DB))          // POST /signup
	r.POST("/login", userControllers.Login(s.DB))            // POST /login
	r.POST("/logout", userControllers.Logout())              // POST /logout
	r.GET("/@me", userControllers.Me(s.DB))                  // GET /@me
	r.GET("/user/:userid", userControllers.Profile(s.DB))    // GET /user/:userid
	r.DELETE("/user/:userid", userControllers.DeleteUser(s.DB)) // DELETE /user/:userid
}
