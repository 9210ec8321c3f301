package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hazellab/catalog-api/internal/api/handler"
	"github.com/hazellab/catalog-api/internal/core/service"
	"github.com/hazellab/catalog-api/internal/infrastructure/config"
	mongodb "github.com/hazellab/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hazellab/catalog-api/internal/infrastructure/db/redis"
	"github.com/hazellab/catalog-api/internal/infrastructure/hash"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("hazellab"))

	// --- Dependencies ---
	hasher := hash.NewBcrypt(cfg.BcryptCost)

	accountRepo := mongodb.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo, hasher, log)
	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(accountService)

	productRepo := mongodb.NewProductRepository(db)
	featuredCache := redisdb.NewFeaturedCache(rdb)
	productService := service.NewProductService(productRepo, featuredCache, log)
	productHandler := handler.NewProductHandler(productService)

	categoryRepo := mongodb.NewCategoryRepository(db)
	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	cartRepo := mongodb.NewCartItemRepository(db)
	cartService := service.NewCartService(cartRepo)
	cartHandler := handler.NewCartHandler(cartService)

	blogRepo := mongodb.NewBlogRepository(db)
	blogService := service.NewBlogService(blogRepo)
	blogHandler := handler.NewBlogHandler(blogService)

	locationHandler := handler.NewLocationHandler()

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Accounts ---
	accounts := e.Group("/api/accounts")
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/search", accountHandler.Search)
	accounts.GET("/role/:role", accountHandler.ByRole)
	accounts.GET("/status/:status", accountHandler.ByStatus)
	accounts.GET("/:id", accountHandler.Get)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)

	// --- Products ---
	products := e.Group("/api/products")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/featured", productHandler.Featured)
	products.GET("/low-stock", productHandler.LowStock)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.PATCH("/:id/deactivate", productHandler.Deactivate)
	products.PATCH("/:id/image", productHandler.UpdateImage)
	products.DELETE("/:id", productHandler.Delete)

	// --- Categories ---
	categories := e.Group("/api/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Cart ---
	cart := e.Group("/api/cart-items")
	cart.POST("", cartHandler.Create)
	cart.GET("", cartHandler.List)
	cart.GET("/account/:accountID", cartHandler.ByAccount)
	cart.GET("/:id", cartHandler.Get)
	cart.PATCH("/:id", cartHandler.UpdateQuantity)
	cart.DELETE("/:id", cartHandler.Delete)

	// --- Blog ---
	blogs := e.Group("/api/blogs")
	blogs.POST("", blogHandler.Create)
	blogs.GET("", blogHandler.List)
	blogs.GET("/:id", blogHandler.Get)
	blogs.PUT("/:id", blogHandler.Update)
	blogs.DELETE("/:id", blogHandler.Delete)

	// --- Locations ---
	locations := e.Group("/api/locations")
	locations.GET("/regions-communes", locationHandler.RegionCommunes)
	locations.GET("/regions", locationHandler.Regions)
	locations.GET("/communes/:region", locationHandler.Communes)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
