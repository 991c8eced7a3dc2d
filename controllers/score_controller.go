package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"motmystere/db"
	"motmystere/structs"

	"github.com/gin-gonic/gin"
)

// UpdateScore raises the caller's best score to the reported value when it is
// higher and returns the stored best either way. The update happens with an
// atomic max on the record, so repeats and concurrent reports converge on the
// true maximum instead of whichever write ran last.
func UpdateScore(c *gin.Context) {
	var req structs.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || *req.Score < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score invalide"})
		return
	}

	googleID := c.GetString("googleId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	bestScore, err := db.Users.RaiseBestScore(ctx, googleID, *req.Score)
	if err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			return
		}
		log.Printf("Failed to update best score: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bestScore": bestScore})
}
