package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stockroom/inventory-api/internal/api/handler"
	"github.com/stockroom/inventory-api/internal/api/middleware"
	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/service"
	"github.com/stockroom/inventory-api/internal/infrastructure/config"
	mongodb "github.com/stockroom/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stockroom/inventory-api/internal/infrastructure/db/redis"
	"github.com/stockroom/inventory-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, sink service.EventSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb, cfg.Redis.CacheTTL)
	productService := service.NewProductService(productRepo, productCache, sink, log)
	productHandler := handler.NewProductHandler(productService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Product routes: bearer token for reads, admin role for mutations ---
	products := e.Group("/products", middleware.Auth(tokens))
	admin := middleware.RequireRoles(domain.RoleAdmin)

	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, admin)
	products.PUT("/:id", productHandler.Update, admin)
	products.DELETE("/:id", productHandler.Delete, admin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
