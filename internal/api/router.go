package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-api/internal/api/handler"
	"github.com/inkpress/blog-api/internal/api/middleware"
	"github.com/inkpress/blog-api/internal/core/service"
	mongodb "github.com/inkpress/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/inkpress/blog-api/internal/infrastructure/db/redis"
	"github.com/inkpress/blog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	postService := service.NewPostService(postRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	limiter := middleware.RateLimit(
		redisdb.NewWindowCounter(rdb),
		cfg.RateLimit.Requests,
		cfg.RateLimit.Window,
	)

	// --- Auth routes (rate limited, no token required) ---
	e.POST("/auth/register", authHandler.Register, limiter)
	e.POST("/auth/login", authHandler.Login, limiter)

	// --- Post routes ---
	v1 := e.Group("/v1")
	v1.GET("/posts", postHandler.List)
	v1.GET("/posts/:id", postHandler.Get)
	v1.POST("/posts", postHandler.Create, authMiddleware)
	v1.PUT("/posts/:id", postHandler.Update, authMiddleware)
	v1.PATCH("/posts/:id", postHandler.Update, authMiddleware)
	v1.DELETE("/posts/:id", postHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
