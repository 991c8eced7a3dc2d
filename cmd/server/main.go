package main

import (
	"log"
	"strconv"

	"motmystere/config"
	"motmystere/controllers"
	"motmystere/db"
	"motmystere/middlewares"
	"motmystere/services"
	"motmystere/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	services.InitGoogleAuth(cfg)
	services.InitCelebrityService(cfg)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Seed the quote collection on first boot
	utils.SeedQuotes()

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for the frontend (e.g., localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Frontend.URL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Public routes
	router.GET("/", controllers.Root)
	router.GET("/health", controllers.Health)
	router.GET("/api/quote", controllers.GetQuote)
	router.GET("/api/celebrity-image", controllers.GetCelebrityImage)

	// Authentication flow
	router.GET("/auth/google", controllers.GoogleLogin)
	router.GET("/auth/google/callback", controllers.GoogleCallback(cfg))
	router.GET("/auth/logout", controllers.Logout)

	// Identity-scoped routes (bearer token required)
	api := router.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user", controllers.GetCurrentUser)
		api.POST("/score", controllers.UpdateScore)
		api.POST("/streak", controllers.UpdateStreak)
	}

	return router
}
