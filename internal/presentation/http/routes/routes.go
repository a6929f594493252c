package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/config"
	domainRepo "github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/internal/presentation/http/handler"
	"github.com/devashishs/billmate-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Business  *handler.BusinessHandler
	Customer  *handler.CustomerHandler
	Product   *handler.ProductHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())
		v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))

		registerBusinessRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerInvoiceRoutes(v1, h)

		// Dashboard and reports
		v1.GET("/dashboard", h.Dashboard.Stats)
		v1.GET("/reports/sales", h.Dashboard.MonthlySales)
	}

	return router
}

func registerBusinessRoutes(v1 *gin.RouterGroup, h *Handlers) {
	businesses := v1.Group("/businesses")
	{
		businesses.GET("", h.Business.List)
		businesses.POST("", h.Business.Create)
		businesses.GET("/default", h.Business.GetDefault)
		businesses.GET("/:id", h.Business.Get)
		businesses.PUT("/:id", h.Business.Update)
		businesses.DELETE("/:id", h.Business.Delete)
		businesses.POST("/:id/default", h.Business.SetDefault)
		businesses.GET("/:id/settings", h.Business.GetSettings)
		businesses.GET("/:id/next-invoice-number", h.Business.NextInvoiceNumber)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.GET("/:id/print", h.Invoice.Print)
	}
}
