package controllers

import (
	"net/http"
	"strings"

	"motmystere/services"

	"github.com/gin-gonic/gin"
)

// GetCelebrityImage resolves an author portrait. The lookup is decorative:
// when nothing is found, or the upstream call fails, imageUrl is null and the
// request still succeeds.
func GetCelebrityImage(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre \"name\" requis"})
		return
	}

	imageURL, found := services.GetCelebrityService().ImageURL(c.Request.Context(), name)
	if !found {
		c.JSON(http.StatusOK, gin.H{"name": name, "imageUrl": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "imageUrl": imageURL})
}
