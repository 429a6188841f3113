package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/checkout"
	cartControllers "github.com/friends-cafe/cafe-api/controllers/cart"
	checkoutControllers "github.com/friends-cafe/cafe-api/controllers/checkout"
	orderControllers "github.com/friends-cafe/cafe-api/controllers/order"
	"github.com/friends-cafe/cafe-api/middleware"
	"github.com/friends-cafe/cafe-api/storage"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, store *storage.Store, flow *checkout.Flow) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(store))               // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db, store))       // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.SetCartQuantity(store))   // PUT /user/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(store)) // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(store))          // DELETE /user/cart
		}

		// ──────────────── Delivery Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", checkoutControllers.ListAddresses(flow))                          // GET /user/addresses
			addressGroup.POST("/", checkoutControllers.AddAddress(flow))                            // POST /user/addresses
			addressGroup.PUT("/:address_id/default", checkoutControllers.SetDefaultAddress(flow))   // PUT /user/addresses/:address_id/default
			addressGroup.DELETE("/:address_id", checkoutControllers.DeleteAddress(flow))            // DELETE /user/addresses/:address_id
		}

		// ──────────────── Checkout ────────────────
		userGroup.GET("/checkout/step", checkoutControllers.GetStep(flow)) // GET /user/checkout/step
		userGroup.PUT("/checkout/step", checkoutControllers.SetStep(flow)) // PUT /user/checkout/step
		userGroup.POST("/checkout", checkoutControllers.PlaceOrder(flow, store, orderControllers.BroadcastOrder))

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrders(store)) // GET /user/orders
	}
}
