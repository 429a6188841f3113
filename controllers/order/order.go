package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/friends-cafe/cafe-api/checkout"
	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

func userPhone(c *gin.Context) (string, bool) {
	phone, _ := c.Get("phone")
	ph, ok := phone.(string)
	return ph, ok && ph != ""
}

// GET /user/orders
func GetUserOrders(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone, ok := userPhone(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, _ := store.RecentOrders(phone)
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/last
//
// Standalone receipt view backed by the friendsCafe_lastOrder slot, usable
// without a session.
func GetLastOrder(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := flow.LastOrder()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No order found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
