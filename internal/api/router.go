package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gemstack/inventory-system/internal/api/handler"
	"github.com/gemstack/inventory-system/internal/api/middleware"
	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/service"
	"github.com/gemstack/inventory-system/internal/core/token"
	mongostore "github.com/gemstack/inventory-system/internal/infrastructure/db/mongo"
	redisstore "github.com/gemstack/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every protected route names its allowed roles explicitly; viewing and
// mutating permissions overlap without nesting, so there is no role ranking
// anywhere in the route table.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("jewellery"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	inventoryRepo := mongostore.NewInventoryRepository(db)
	priceRepo := mongostore.NewPriceRepository(db)
	statusRepo := mongostore.NewStatusRepository(db)
	priceCache := redisstore.NewPriceCache(rdb)

	authService := service.NewAuthService(userRepo, tokens)
	identity := service.NewIdentityService(tokens, userRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	priceService := service.NewPriceService(priceRepo, priceCache, log)

	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	priceHandler := handler.NewPriceHandler(priceService)
	statusHandler := handler.NewStatusHandler(statusRepo)

	authn := middleware.Authenticate(identity)
	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleSalesperson)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	adminOrManager := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	credLimiter := middleware.NewRateLimiter(30, 10).Middleware()

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	apiGroup.POST("/auth/register", authHandler.Register, credLimiter)
	apiGroup.POST("/auth/login", authHandler.Login, credLimiter)
	apiGroup.GET("/auth/me", authHandler.Me, authn, anyRole)

	// --- Metal price routes ---
	apiGroup.GET("/metal-prices", priceHandler.Latest)
	apiGroup.PUT("/metal-prices", priceHandler.Update, authn, adminOnly)

	// --- Inventory routes ---
	apiGroup.GET("/inventory", inventoryHandler.List, authn, anyRole)
	apiGroup.GET("/inventory/:id", inventoryHandler.Get, authn, anyRole)
	apiGroup.POST("/inventory", inventoryHandler.Create, authn, adminOrManager)
	apiGroup.PUT("/inventory/:id", inventoryHandler.Update, authn, adminOrManager)
	apiGroup.DELETE("/inventory/:id", inventoryHandler.Delete, authn, adminOrManager)

	// --- Status checks ---
	apiGroup.POST("/status", statusHandler.Create)
	apiGroup.GET("/status", statusHandler.List)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
