// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gpstracker/inventory-backend/internal/config"
	"github.com/gpstracker/inventory-backend/internal/handlers"
	"github.com/gpstracker/inventory-backend/internal/middleware"
	"github.com/gpstracker/inventory-backend/internal/repository"
	"github.com/gpstracker/inventory-backend/internal/services"
	"github.com/gpstracker/inventory-backend/internal/utils"
)

// Initialize wires repositories, services and handlers onto a gin engine.
func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.SetJWTSecret(cfg.Auth.SecretKey)

	productRepo := repository.NewProductRepository(db)
	itemRepo := repository.NewInventoryItemRepository(db)

	catalogService := services.NewCatalogService(productRepo)
	inventoryService := services.NewInventoryService(itemRepo, productRepo)

	productHandler := handlers.NewProductHandler(catalogService)
	itemHandler := handlers.NewInventoryItemHandler(inventoryService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	r.Use(rl.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "inventory-backend",
		})
	})

	v1 := r.Group("/v1")

	RegisterRoutes(v1, productHandler, itemHandler, cfg)

	return r
}

// RegisterRoutes attaches the API routes to the given group. Mutating routes
// require a bearer token when auth is enabled.
func RegisterRoutes(v1 *gin.RouterGroup, products *handlers.ProductHandler, items *handlers.InventoryItemHandler, cfg *config.Config) {
	guard := func() gin.HandlerFunc {
		if cfg.Auth.Enabled {
			return middleware.AuthRequired()
		}
		return func(c *gin.Context) { c.Next() }
	}()

	productRoutes := v1.Group("/products")
	{
		productRoutes.GET("", products.GetProducts)
		productRoutes.GET("/:id", products.GetProduct)
		productRoutes.GET("/sku/:sku", products.GetProductBySKU)
		productRoutes.POST("", guard, products.CreateProduct)
		productRoutes.PUT("/:id", guard, products.UpdateProduct)
		productRoutes.DELETE("/:id", guard, products.DeleteProduct)
	}

	itemRoutes := v1.Group("/inventory-items")
	{
		itemRoutes.GET("", items.GetItems)
		itemRoutes.GET("/count", items.CountItems)
		itemRoutes.GET("/:id", items.GetItem)
		itemRoutes.GET("/imei/:imei", items.GetItemByImei)
		itemRoutes.GET("/iccid/:iccid", items.GetItemByIccid)
		itemRoutes.GET("/serial/:serialNumber", items.GetItemBySerialNumber)
		itemRoutes.POST("", guard, items.CreateItem)
		itemRoutes.PUT("/:id", guard, items.UpdateItem)
		itemRoutes.DELETE("/:id", guard, items.DeleteItem)
	}
}
