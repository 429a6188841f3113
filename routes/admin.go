package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/friends-cafe/cafe-api/controllers/admin"
	orderControllers "github.com/friends-cafe/cafe-api/controllers/order"
	"github.com/friends-cafe/cafe-api/middleware"
	"github.com/friends-cafe/cafe-api/storage"
)

// SetupAdminRoutes registers the API-key-protected operator endpoints.
func SetupAdminRoutes(r *gin.Engine, store *storage.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/sessions", adminControllers.ListSessions(store))          // GET /admin/sessions
		adminGroup.GET("/sessions/:phone", adminControllers.GetSession(store))     // GET /admin/sessions/:phone
		adminGroup.DELETE("/sessions/:phone", adminControllers.DeleteSession(store))

		adminGroup.GET("/orders/:phone/export", orderControllers.ExportOrdersToExcel(store)) // GET /admin/orders/:phone/export
	}
}
