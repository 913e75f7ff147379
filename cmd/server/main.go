package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"buildops_backend/internal/repositories"
	router_pkg "buildops_backend/internal/router"
	"buildops_backend/internal/seed"
	"buildops_backend/internal/storage"
	"buildops_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Initialize the local store and seed it on first run
	dbPath := utils.Getenv("DB_PATH", "buildops.db")
	store, err := storage.New(dbPath)
	if err != nil {
		utils.LogError(err, "Failed to open local store")
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer store.Close()

	defaults, err := seed.Defaults()
	if err != nil {
		utils.LogError(err, "Failed to build seed data")
		log.Fatalf("Failed to build seed data: %v", err)
	}
	if err := store.InitializeIfEmpty(defaults); err != nil {
		utils.LogError(err, "Failed to initialize local store")
		log.Fatalf("Failed to initialize local store: %v", err)
	}
	utils.LogInfo("Local store initialized", map[string]interface{}{"db_path": dbPath})

	// Hydrate the in-memory datasets
	ds := repositories.Load(store)

	router := gin.Default()

	// Add GinLogger middleware for request logging
	router.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/readyz", func(c *gin.Context) {
		if _, _, err := store.Get(storage.KeyMaterials); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup all application routes
	router_pkg.Setup(router, ds)

	// Server port configuration
	port := utils.Getenv("PORT", "8080") // Default to 8080 if not set
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "configured_from_env": true})
	utils.LogInfo("Frontend should be configured to make API calls", map[string]interface{}{"url": "http://localhost:" + port + "/api/v1"})

	if err := router.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
