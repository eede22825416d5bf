package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"moodlog/database"
	"moodlog/internal/config"
	"moodlog/internal/controllers"
	"moodlog/internal/middleware"
	"moodlog/internal/service"
	"moodlog/routes"
)

func main() {
	// Load environment variables; a missing .env is fine when the
	// environment is set by the shell or the deployment.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	activityStore, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to storage: %v", err)
	}

	activityService := service.NewActivityService(activityStore)
	defer activityService.Close()

	// Initialization failures are fatal; per-request failures later are
	// surfaced to the caller instead.
	if err := activityService.InitializeStore(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	activityController := controllers.NewActivityController(activityService)
	catalogController := controllers.NewCatalogController()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		backend := "PostgreSQL"
		if cfg.UseLocalMirror() {
			backend = "Local mirror"
		}
		c.JSON(200, gin.H{
			"message": "moodlog API is running",
			"version": "1.0.0",
			"status":  "healthy",
			"storage": backend,
		})
	})

	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterCatalogRoutes(router, catalogController)

	log.Printf("Server starting on port %s", cfg.Port)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
