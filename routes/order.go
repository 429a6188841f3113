package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/friends-cafe/cafe-api/checkout"
	orderControllers "github.com/friends-cafe/cafe-api/controllers/order"
)

// SetupOrderRoutes registers the public order surfaces: the standalone
// receipt view and the live order websocket feed.
func SetupOrderRoutes(r *gin.Engine, flow *checkout.Flow) {
	r.GET("/orders/last", orderControllers.GetLastOrder(flow)) // GET /orders/last
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
