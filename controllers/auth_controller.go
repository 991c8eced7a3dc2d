package controllers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"motmystere/config"
	"motmystere/db"
	"motmystere/services"
	"motmystere/utils"

	"github.com/gin-gonic/gin"
)

// exchangeCode is swapped out in tests to avoid a live provider round trip.
var exchangeCode = services.ExchangeCode

// GoogleLogin begins the handshake with Google and redirects the client to
// the provider's consent page.
func GoogleLogin(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, services.BeginGoogleAuth())
}

// GoogleCallback is the provider's return hop. On success the client is
// redirected to the frontend with a one-time token query parameter; on any
// failure it gets a generic error indicator, never provider detail, and the
// user store is left untouched.
func GoogleCallback(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("error") != "" {
			redirectWithError(c, cfg)
			return
		}

		code := c.Query("code")
		if code == "" || !services.ConsumeState(c.Query("state")) {
			redirectWithError(c, cfg)
			return
		}

		profile, err := exchangeCode(c.Request.Context(), code)
		if err != nil {
			log.Printf("Google code exchange failed: %v", err)
			redirectWithError(c, cfg)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := db.Users.SyncProfile(ctx, profile.ID, profile.Email, profile.Name, profile.Picture)
		if err != nil {
			log.Printf("Failed to sync user profile: %v", err)
			redirectWithError(c, cfg)
			return
		}

		token, err := utils.GenerateToken(user.GoogleID, user.Email)
		if err != nil {
			log.Printf("Failed to generate token: %v", err)
			redirectWithError(c, cfg)
			return
		}

		c.Redirect(http.StatusTemporaryRedirect,
			cfg.Frontend.URL+"/?token="+url.QueryEscape(token))
	}
}

func redirectWithError(c *gin.Context, cfg *config.Config) {
	c.Redirect(http.StatusTemporaryRedirect, cfg.Frontend.URL+"/?error=auth_failed")
}

// Logout performs no server-side state change: tokens are not revocable, the
// client simply discards its credential.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
