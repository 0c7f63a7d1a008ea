package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eagleboard/eagleboard-backend/config"
	"github.com/eagleboard/eagleboard-backend/routes"
)

// @title EagleBoard API
// @version 1.0.0
// @description Campus event bulletin board: submit events with an optional poster, list what's upcoming, fetch posters back.
// @BasePath /
func main() {
	cfg := config.Load()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Optional request logger
	router.Use(func(c *gin.Context) {
		log.Printf("REQUEST -> 👉 %s %s from origin %s", c.Request.Method, c.Request.URL.Path, c.Request.Header.Get("Origin"))
		c.Next()
	})

	// CORS middleware: the board is public, so allow all origins unless a
	// list is configured.
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Content-Length", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	if err := routes.Setup(router, cfg); err != nil {
		log.Fatalf("❌ Failed to set up routes: %v", err)
	}

	// Start server
	fmt.Printf("🚀 EagleBoard server running on http://localhost:%s\n", cfg.Port)
	fmt.Printf("📁 Upload directory: %s\n", cfg.UploadDir)
	fmt.Printf("🗂 Store backend: %s\n", cfg.StoreBackend)
	fmt.Println("Press Ctrl+C to stop the server")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
