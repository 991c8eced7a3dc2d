package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"motmystere/db"
	"motmystere/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the matching user record
// into the request context. No credential at all is a 401; a credential that
// does not verify, or that references a user the store no longer has, is a 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Accès refusé"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// A live token can outlast its record since there is no revocation,
		// so the lookup may legitimately come back empty.
		user, err := db.Users.FindByGoogleID(ctx, claims.GoogleID)
		if err != nil {
			if err == db.ErrNotFound {
				c.JSON(http.StatusForbidden, gin.H{"error": "Utilisateur introuvable"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("googleId", user.GoogleID)
		c.Next()
	}
}
