// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/domain/cart"
	"github.com/ikilo/storefront-backend/internal/domain/catalog"
	"github.com/ikilo/storefront-backend/internal/domain/checkout"
	"github.com/ikilo/storefront-backend/internal/domain/order"
	"github.com/ikilo/storefront-backend/internal/interfaces/http/handlers"
	"github.com/ikilo/storefront-backend/internal/interfaces/http/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes wires the services and registers every API route. Both db and
// redisClient may be nil; the storefront keeps serving from its built-in
// dataset and in-process cart store.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	catalogService := catalog.NewService(db, cfg, log)

	var cartStore cart.Store
	if redisClient != nil {
		cartStore = cart.NewRedisStore(redisClient, cfg.Store.CartTTL)
	} else {
		log.Warn("redis unavailable, carts held in process memory")
		cartStore = cart.NewMemoryStore(cfg.Store.CartTTL)
	}
	cartService := cart.NewService(cartStore, catalogService, log)

	orderService := order.NewService(db, log)
	checkoutService := checkout.NewService(cartService, orderService, cfg, log)

	setupCatalogRoutes(rg, catalogService)
	setupCartRoutes(rg, cartService, cfg)
	setupCheckoutRoutes(rg, checkoutService, cfg)
	setupAdminRoutes(rg, orderService, db, cfg, log)
}

func setupCatalogRoutes(rg *gin.RouterGroup, catalogService *catalog.Service) {
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	rg.GET("/products", catalogHandler.GetProducts)
	rg.GET("/products/:id", catalogHandler.GetProduct)
	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/catalog/status", catalogHandler.GetStatus)
}

func setupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartService, cfg)

	carts := rg.Group("/cart")
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("/items", cartHandler.AddLine)
		carts.PUT("/items", cartHandler.UpdateLine)
		carts.DELETE("/items", cartHandler.RemoveLine)
		carts.DELETE("", cartHandler.ClearCart)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, checkoutService *checkout.Service, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg)

	rg.POST("/checkout", checkoutHandler.Checkout)
}

func setupAdminRoutes(rg *gin.RouterGroup, orderService *order.Service, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(cfg, log)
	orderHandler := handlers.NewOrderHandler(orderService)
	seedHandler := handlers.NewSeedHandler(db, log)

	admin := rg.Group("/admin")
	{
		admin.POST("/auth/login", authHandler.Login)

		protected := admin.Group("")
		protected.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
		{
			protected.GET("/orders", orderHandler.ListOrders)
			protected.GET("/orders/:id", orderHandler.GetOrder)
			protected.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
			protected.POST("/seed", seedHandler.Seed)
		}
	}
}
