package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/house-hunter/server/internal/api/handler"
	"github.com/house-hunter/server/internal/api/middleware"
	"github.com/house-hunter/server/internal/core/ports"
	"github.com/house-hunter/server/internal/core/service"
	mongodb "github.com/house-hunter/server/internal/infrastructure/db/mongo"
	redisdb "github.com/house-hunter/server/internal/infrastructure/db/redis"
)

const tokenTTL = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, activity ports.ActivityRecorder, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // wide-open, as the platform's frontend expects
	e.Use(echoprometheus.NewMiddleware("house_hunter"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, throttle, jwtSecret, tokenTTL, log)
	userService := service.NewUserService(userRepo)
	authHandler := handler.NewAuthHandler(authService, activity)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Token-gated routes ---
	e.GET("/users", userHandler.List, authMiddleware)
	e.GET("/user/:email", userHandler.GetByEmail, authMiddleware)

	// --- Liveness, readiness and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
