package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamaza7867/POS-NEW/internal/config"
	"github.com/hamaza7867/POS-NEW/internal/handler"
	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/middleware"
	"github.com/hamaza7867/POS-NEW/internal/repository"
	"github.com/hamaza7867/POS-NEW/internal/service"
	"github.com/hamaza7867/POS-NEW/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← KVStore
func New(cfg *config.Config, kv *infra.KVStore, printer *infra.SpoolPrinter, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(kv)
	settingsRepo := repository.NewSettingsRepository(kv)
	transactionRepo := repository.NewTransactionRepository(kv)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	cartSvc := service.NewCartService()
	checkoutSvc := service.NewCheckoutService(cartSvc, settingsRepo, transactionRepo, printer, dispatcher, cfg.SpoolPath)
	backupSvc := service.NewBackupService(productSvc, settingsSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	cartH := handler.NewCartHandler(cartSvc, productSvc, settingsSvc, checkoutSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc)
	transactionsH := handler.NewTransactionsHandler(transactionRepo)
	backupH := handler.NewBackupHandler(backupSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(printer.Breaker()))

	v1 := r.Group("/v1")
	{
		v1.GET("/products", productsH.List)
		v1.POST("/products", productsH.Create)
		v1.DELETE("/products/:id", productsH.Delete)
		v1.GET("/products/categories", productsH.Categories)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)

		v1.GET("/cart", cartH.Get)
		v1.POST("/cart/items", cartH.AddItem)
		v1.PATCH("/cart/items/:id", cartH.ChangeQuantity)
		v1.DELETE("/cart/items/:id", cartH.RemoveItem)
		v1.DELETE("/cart", cartH.Clear)
		v1.PUT("/cart/discount", cartH.SetDiscount)

		v1.POST("/checkout", checkoutH.RequestPayment)
		v1.POST("/checkout/complete", checkoutH.Complete)
		v1.DELETE("/checkout", checkoutH.Cancel)
		v1.GET("/checkout", checkoutH.State)

		v1.GET("/transactions", transactionsH.List)

		v1.GET("/backup/export", backupH.ExportJSON)
		v1.GET("/backup/export.csv", backupH.ExportCSV)
		v1.POST("/backup/import", backupH.StageImport)
		v1.POST("/backup/import/confirm", backupH.ConfirmImport)
		v1.DELETE("/backup/import", backupH.DiscardImport)
	}

	return r
}
