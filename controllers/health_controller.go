package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"motmystere/db"

	"github.com/gin-gonic/gin"
)

// Root describes the API for whoever hits the bare domain.
func Root(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	total, err := db.Quotes.Count(ctx)
	if err != nil {
		log.Printf("Failed to count quotes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur serveur"})
		return
	}

	authors, err := db.Quotes.Authors(ctx)
	if err != nil {
		log.Printf("Failed to list authors: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "API Quizz est en ligne !",
		"source":      "Citations drôles - Ouest-France",
		"totalQuotes": total,
		"authors":     authors,
		"endpoints": gin.H{
			"quote":          "/api/quote",
			"user":           "/api/user",
			"score":          "/api/score",
			"streak":         "/api/streak",
			"celebrityImage": "/api/celebrity-image",
			"login":          "/auth/google",
			"health":         "/health",
		},
	})
}

// Health reports liveness for operational tooling: degraded when the backing
// store does not answer a ping, ok otherwise.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if db.Users == nil || db.Users.Ping(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": "disconnected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "connected"})
}
