package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/friends-cafe/cafe-api/storage"
)

// GET /admin/sessions
func ListSessions(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"phones": store.Phones()})
	}
}

// GET /admin/sessions/:phone
func GetSession(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := store.Get(c.Param("phone"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No session for that phone"})
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// DELETE /admin/sessions/:phone
func DeleteSession(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear(c.Param("phone"))
		c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
	}
}
