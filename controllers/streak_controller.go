package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"motmystere/db"
	"motmystere/services"

	"github.com/gin-gonic/gin"
)

// UpdateStreak records that the caller played today and returns the resulting
// consecutive-day counter. Reporting twice on the same date is a no-op.
func UpdateStreak(c *gin.Context) {
	googleID := c.GetString("googleId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	streak, err := services.ReportPlay(ctx, db.Users, googleID, time.Now())
	if err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			return
		}
		log.Printf("Failed to update streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
