package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/friends-cafe/cafe-api/auth"
	authControllers "github.com/friends-cafe/cafe-api/controllers/auth"
)

// SetupAuthRoutes registers the simulated OTP login/signup endpoints.
func SetupAuthRoutes(r *gin.Engine, mgr *auth.Manager) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(mgr)) // POST /auth/signup
		authGroup.POST("/login", authControllers.Login(mgr))   // POST /auth/login
		authGroup.POST("/logout", authControllers.Logout(mgr)) // POST /auth/logout
		authGroup.GET("/me", authControllers.Me(mgr))          // GET  /auth/me
	}
}
