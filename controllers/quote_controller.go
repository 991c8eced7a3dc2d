package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"motmystere/db"
	"motmystere/services"
	"motmystere/structs"

	"github.com/gin-gonic/gin"
)

// GetQuote picks one quote at random, blanks its missing word and shuffles
// the options. Public: the game itself does not require a login.
func GetQuote(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	quote, err := db.Quotes.RandomQuote(ctx)
	if err != nil {
		if err == db.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Aucune citation disponible"})
			return
		}
		log.Printf("Failed to fetch a quote: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer une citation"})
		return
	}

	c.JSON(http.StatusOK, structs.QuoteResponse{
		ID:            quote.ID.Hex(),
		Text:          services.BlankMissingWord(quote.Text, quote.MissingWord),
		FullText:      quote.Text,
		Author:        quote.Author,
		CorrectAnswer: quote.MissingWord,
		Options:       services.ShuffleOptions(quote.Options),
	})
}
