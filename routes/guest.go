package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/friends-cafe/cafe-api/controllers/cart"
	"github.com/friends-cafe/cafe-api/storage"
)

// SetupGuestRoutes registers the anonymous cart endpoints. No token needed;
// the cart lives in the shared guest slot until a signup claims it.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB, store *storage.Store) {
	guestGroup := r.Group("/guest/cart")
	{
		guestGroup.GET("/", cartControllers.GetGuestCart(store))                    // GET /guest/cart
		guestGroup.POST("/", cartControllers.UpdateGuestCartItem(db, store))        // POST /guest/cart
		guestGroup.PUT("/:item_id", cartControllers.SetGuestCartQuantity(store))    // PUT /guest/cart/:item_id
		guestGroup.DELETE("/:item_id", cartControllers.DeleteGuestCartItem(store))  // DELETE /guest/cart/:item_id
		guestGroup.DELETE("/", cartControllers.ClearGuestCart(store))               // DELETE /guest/cart
	}
}
