package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/cart"
	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

type CartItemInput struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Size     string `json:"size"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// userFromContext rebuilds the request identity set by the JWT middleware.
func userFromContext(c *gin.Context) (*models.User, bool) {
	userID, _ := c.Get("user_id")
	phone, _ := c.Get("phone")
	id, ok1 := userID.(string)
	ph, ok2 := phone.(string)
	if !ok1 || !ok2 || id == "" || ph == "" {
		return nil, false
	}
	return &models.User{ID: id, Phone: ph, IsLoggedIn: true}, true
}

// managerFor loads the cart for the request identity. Each request gets a
// fresh manager so two users never share cart state.
func managerFor(store *storage.Store, user *models.User) *cart.Manager {
	m := cart.NewManager(store)
	if user != nil {
		m.SetUser(user)
	}
	return m
}

// lineFromMenu resolves the menu item and size into a priced cart line. The
// stored menu is authoritative for prices; the client never sends one.
func lineFromMenu(db *gorm.DB, input CartItemInput) (models.CartItem, string, int) {
	var item models.MenuItem
	if err := db.First(&item, "id = ?", input.ItemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.CartItem{}, "Menu item does not exist", http.StatusBadRequest
		}
		return models.CartItem{}, "Failed to validate menu item", http.StatusInternalServerError
	}

	price, err := item.PriceFor(input.Size)
	if err != nil {
		return models.CartItem{}, err.Error(), http.StatusBadRequest
	}

	var category models.MenuCategory
	if err := db.First(&category, "id = ?", item.CategoryID).Error; err != nil {
		return models.CartItem{}, "Failed to resolve menu category", http.StatusInternalServerError
	}

	size := ""
	if item.HasSizes() {
		size = input.Size
	}
	return models.CartItem{
		ID:       item.CartItemID(input.Size),
		Name:     item.Name,
		Price:    price,
		Image:    item.Image,
		Quantity: input.Quantity,
		Size:     size,
		IsVeg:    item.IsVeg,
		Category: category.Name,
	}, "", 0
}

func respondCart(c *gin.Context, status int, m *cart.Manager, message string) {
	body := gin.H{
		"items":  m.Items(),
		"totals": m.Totals(),
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// GET /user/cart
func GetUserCart(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		respondCart(c, http.StatusOK, managerFor(store, user), "")
	}
}

// POST /user/cart
func UpdateCartItem(db *gorm.DB, store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

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

		m := managerFor(store, user)
		switch m.AddItem(line) {
		case cart.Updated:
			respondCart(c, http.StatusOK, m, line.Name+" quantity updated in your cart")
		default:
			respondCart(c, http.StatusCreated, m, line.Name+" added to your cart")
		}
	}
}

// PUT /user/cart/:item_id
func SetCartQuantity(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m := managerFor(store, user)
		itemID := c.Param("item_id")
		changed := m.SetQuantity(itemID, *input.Quantity)
		if !changed && *input.Quantity > 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		respondCart(c, http.StatusOK, m, "")
	}
}

// DELETE /user/cart/:item_id
//
// Removing an item that is not there is a success: the end state is the same.
func DeleteCartItem(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		m := managerFor(store, user)
		m.RemoveItem(c.Param("item_id"))
		respondCart(c, http.StatusOK, m, "")
	}
}

// DELETE /user/cart
func ClearUserCart(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		m := managerFor(store, user)
		m.Clear()
		respondCart(c, http.StatusOK, m, "All items have been removed from your cart")
	}
}
