package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/cart"
	"github.com/friends-cafe/cafe-api/storage"
)

// Guest cart endpoints operate on the anonymous friendsCafe_cart_guest slot.
// No token is required; a later signup migrates this cart into the new
// account.

// GET /guest/cart
func GetGuestCart(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondCart(c, http.StatusOK, cart.NewManager(store), "")
	}
}

// POST /guest/cart
func UpdateGuestCartItem(db *gorm.DB, store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, errMsg, errStatus := lineFromMenu(db, input)
		if errMsg != "" {
			c.JSON(errStatus, gin.H{"error": errMsg})
			return
		}

		m := cart.NewManager(store)
		switch m.AddItem(line) {
		case cart.Updated:
			respondCart(c, http.StatusOK, m, line.Name+" quantity updated in your cart")
		default:
			respondCart(c, http.StatusCreated, m, line.Name+" added to your cart")
		}
	}
}

// PUT /guest/cart/:item_id
func SetGuestCartQuantity(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m := cart.NewManager(store)
		itemID := c.Param("item_id")
		changed := m.SetQuantity(itemID, *input.Quantity)
		if !changed && *input.Quantity > 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		respondCart(c, http.StatusOK, m, "")
	}
}

// DELETE /guest/cart/:item_id
func DeleteGuestCartItem(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := cart.NewManager(store)
		m.RemoveItem(c.Param("item_id"))
		respondCart(c, http.StatusOK, m, "")
	}
}

// DELETE /guest/cart
func ClearGuestCart(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := cart.NewManager(store)
		m.Clear()
		respondCart(c, http.StatusOK, m, "All items have been removed from your cart")
	}
}
