package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/friends-cafe/cafe-api/auth"
)

type LoginInput struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
}

// statusFor maps auth errors onto HTTP statuses. Validation problems are 400,
// OTP rejection 401, registration mismatches 404/409, a busy verifier 429.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidOTP):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidPhone), errors.Is(err, auth.ErrInvalidUsername):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrVerificationInFlight):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// POST /auth/login
func Login(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := mgr.Login(c.Request.Context(), input.Phone, input.OTP)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   token,
		})
	}
}

// POST /auth/signup
func Signup(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := mgr.Signup(c.Request.Context(), input.Username, input.Phone, input.OTP)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created",
			"user":    user,
			"token":   token,
		})
	}
}

// POST /auth/logout
func Logout(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/me
func Me(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := mgr.CurrentUser()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
