package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/auth"
	"github.com/friends-cafe/cafe-api/checkout"
	"github.com/friends-cafe/cafe-api/storage"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *storage.Store, authMgr *auth.Manager, flow *checkout.Flow) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, authMgr)

	// Public menu + receipt + order feed
	SetupMenuRoutes(r, db)
	SetupOrderRoutes(r, flow)

	// Guest cart (no token)
	SetupGuestRoutes(r, db, store)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, store, flow)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, store)
}
