package routes

import (
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/services"
	"stayhub/services/logger"
)

// SetupRoutes builds the controllers and mounts the REST surface.
func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) *services.BookingService {
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	userService := services.NewUserService(services.UserServiceOptions{DB: db, Logger: appLogger})
	bookingService := services.NewBookingService(services.BookingServiceOptions{DB: db, Logger: appLogger})
	statsService := services.NewStatsService(services.StatsServiceOptions{DB: db, Logger: appLogger})

	revoker := services.NewTokenRevoker(rdb)

	authController := controllers.NewAuthController(userService, revoker)
	userController := controllers.NewUserController(userService)
	roomController := controllers.NewRoomController(db, bookingService)
	bookingController := controllers.NewBookingController(db, bookingService, m)
	reviewController := controllers.NewReviewController(db)
	statsController := controllers.NewStatsController(statsService)
	uploadController := controllers.NewUploadController(cld)

	authLimiter := middlewares.NewIPRateLimiter(10, 5, 5*time.Minute)
	bookingLimiter := middlewares.NewIPRateLimiter(30, 10, 5*time.Minute)

	auth := middlewares.AuthMiddleware(revoker)
	adminOnly := middlewares.AuthMiddleware(revoker, constants.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.POST("/jwt", middlewares.RateLimitByIP(authLimiter), authController.IssueToken)
	v1.POST("/auth/google", middlewares.RateLimitByIP(authLimiter), authController.AuthGoogle)
	v1.POST("/auth/register", middlewares.RateLimitByIP(authLimiter), authController.Register)
	v1.POST("/auth/login", middlewares.RateLimitByIP(authLimiter), authController.Login)
	v1.DELETE("/auth/logout", auth, authController.Logout)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.POST("/rooms", adminOnly, roomController.CreateRoom)
	v1.PATCH("/rooms/:id", adminOnly, roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", adminOnly, roomController.DeleteRoom)

	v1.POST("/bookings", auth, middlewares.RateLimitByIP(bookingLimiter), bookingController.CreateBooking)
	v1.POST("/bookings/range", auth, middlewares.RateLimitByIP(bookingLimiter), bookingController.CreateBookingRange)
	v1.POST("/bookings/dates", auth, middlewares.RateLimitByIP(bookingLimiter), bookingController.CreateBookingDates)
	v1.GET("/bookings", auth, bookingController.GetBookings)
	v1.GET("/bookings/room/:roomId/dates", bookingController.GetRoomBookedDates)
	v1.PATCH("/bookings/:id", auth, bookingController.UpdateBooking)
	v1.DELETE("/bookings/:id", auth, bookingController.DeleteBooking)

	v1.POST("/reviews", auth, reviewController.CreateReview)
	v1.GET("/reviews/:roomId", reviewController.GetReviews)

	v1.GET("/users", adminOnly, userController.GetUsers)
	v1.GET("/profile", auth, userController.GetProfile)
	v1.PATCH("/users/:id/role", adminOnly, userController.UpdateUserRole)
	v1.DELETE("/users/:id", adminOnly, userController.DeleteUser)

	v1.GET("/admin/stats", adminOnly, statsController.GetAdminStats)

	v1.POST("/img/upload", adminOnly, uploadController.UploadImage)

	return bookingService
}
