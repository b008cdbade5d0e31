package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/jobs"
	"stayhub/routes"
)

func main() {
	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	bookingService := routes.SetupRoutes(app.Router, app.DB, app.Redis, app.Cloudinary, app.Melody)

	if err := jobs.InitCronJobs(app.Cron, bookingService); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	app.InitWebSocket()

	app.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnvDefault("PORT", "8083")
	log.Println("Server starting on port " + port + "...")
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
