package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/friends-cafe/cafe-api/cart"
	"github.com/friends-cafe/cafe-api/checkout"
	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

type AddressInput struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
	Type         string `json:"type" binding:"required"`
}

type StepInput struct {
	Step string `json:"step" binding:"required"`
}

type PlaceOrderInput struct {
	AddressID     string `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

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

// GET /user/addresses
func ListAddresses(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		addrs := flow.Addresses().List(user)
		if addrs == nil {
			addrs = []models.Address{}
		}
		c.JSON(http.StatusOK, addrs)
	}
}

// POST /user/addresses
func AddAddress(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addr, err := flow.Addresses().Add(user, models.Address{
			Name:         input.Name,
			Phone:        input.Phone,
			AddressLine1: input.AddressLine1,
			AddressLine2: input.AddressLine2,
			City:         input.City,
			State:        input.State,
			Pincode:      input.Pincode,
			Type:         models.AddressType(input.Type),
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, checkout.ErrStorage) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, addr)
	}
}

// PUT /user/addresses/:address_id/default
func SetDefaultAddress(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := flow.Addresses().SetDefault(user, c.Param("address_id")); err != nil {
			status := http.StatusNotFound
			if errors.Is(err, checkout.ErrStorage) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
	}
}

// DELETE /user/addresses/:address_id
func DeleteAddress(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := flow.Addresses().Remove(user, c.Param("address_id")); err != nil {
			status := http.StatusNotFound
			if errors.Is(err, checkout.ErrStorage) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address removed"})
	}
}

// GET /user/checkout/step
func GetStep(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": flow.Step(user)})
	}
}

// PUT /user/checkout/step
func SetStep(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input StepInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := flow.SetStep(user, checkout.Step(input.Step)); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, checkout.ErrStorage) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": input.Step})
	}
}

// POST /user/checkout
func PlaceOrder(flow *checkout.Flow, store *storage.Store, broadcast func(models.Order)) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := models.MapPaymentMethod(input.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m := cart.NewManager(store)
		m.SetUser(user)

		order, err := flow.PlaceOrder(c.Request.Context(), user, m, input.AddressID, method)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, checkout.ErrStorage) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if broadcast != nil {
			broadcast(*order)
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}
