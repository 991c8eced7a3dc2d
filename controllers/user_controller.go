package controllers

import (
	"net/http"

	"motmystere/models"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the record the auth middleware resolved for the
// bearer of the token.
func GetCurrentUser(c *gin.Context) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Accès refusé"})
		return
	}

	user := value.(*models.User)
	c.JSON(http.StatusOK, user)
}
