package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	menuControllers "github.com/friends-cafe/cafe-api/controllers/menu"
)

// SetupMenuRoutes registers the public menu browsing endpoints.
func SetupMenuRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/menu", menuControllers.GetMenu(db))               // GET /menu
	r.GET("/menu/:category", menuControllers.GetCategory(db)) // GET /menu/:category
}
