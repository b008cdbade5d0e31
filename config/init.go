package config

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App holds every shared handle; nothing lives in package globals so
// controllers and services always receive their collaborators
// explicitly.
type App struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Melody     *melody.Melody
	Cron       *cron.Cron
}

// InitApp wires the gin engine, CORS, database, redis and cloudinary.
func InitApp() (*App, error) {
	if err := LoadEnv(); err != nil {
		log.Printf("warning: no .env file, using process environment: %v", err)
	}

	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))
	router.SetTrustedProxies(nil)

	db, err := ConnectDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	rdb, err := ConnectRedis(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	cld, err := ConnectCloudinary()
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	return &App{
		Router:     router,
		DB:         db,
		Redis:      rdb,
		Cloudinary: cld,
		Melody:     melody.New(),
		Cron:       cron.New(),
	}, nil
}

// InitWebSocket mounts the melody endpoint used for booking event
// broadcasts.
func (a *App) InitWebSocket() {
	a.Router.GET("/ws", func(c *gin.Context) {
		a.Melody.HandleRequest(c.Writer, c.Request)
	})
}
