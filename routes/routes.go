package routes

import (
	"time"

	userRepo "raphtravel/database/repository/user"
	"raphtravel/handlers"
	"raphtravel/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Deps carries everything route registration needs; all of it is constructed
// in main and injected here.
type Deps struct {
	JWTSecret []byte
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client

	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	BookingHandler        *handlers.BookingHandler
	RecommendationHandler *handlers.RecommendationHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, deps *Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness endpoints, unauthenticated.
	r.GET("/", handlers.RootHandler)
	r.GET("/health", handlers.HealthHandler)

	auth := r.Group("/auth")
	{
		auth.POST("/login", deps.AuthHandler.LoginHandler)
		auth.POST("/register", deps.AuthHandler.RegisterHandler)
	}

	requireAuth := middleware.JWTAuthUserMiddleware(deps.JWTSecret, deps.UserRepo, deps.AuthCache)

	users := r.Group("/users")
	{
		users.Use(requireAuth)
		users.GET("/me", deps.UserHandler.GetProfileHandler)
		users.PUT("/me/preferences", deps.UserHandler.UpdatePreferencesHandler)
	}

	bookings := r.Group("/bookings")
	{
		bookings.Use(requireAuth)
		bookings.GET("", deps.BookingHandler.ListBookingsHandler)
		bookings.GET("/search/flights", deps.BookingHandler.SearchFlightsHandler)
		bookings.GET("/search/hotels", deps.BookingHandler.SearchHotelsHandler)
		bookings.GET("/search/cars", deps.BookingHandler.SearchCarRentalsHandler)
		bookings.GET("/search/cruises", deps.BookingHandler.SearchCruisesHandler)
		bookings.GET("/prices", deps.BookingHandler.LivePricesHandler)
		bookings.POST("/book", deps.BookingHandler.CreateBookingHandler)
		bookings.GET("/recommendations", deps.RecommendationHandler.GetRecommendationsHandler)
	}
}
