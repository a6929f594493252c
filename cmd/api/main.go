package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/application/service"
	"github.com/devashishs/billmate-api/internal/config"
	"github.com/devashishs/billmate-api/internal/infrastructure/database"
	"github.com/devashishs/billmate-api/internal/infrastructure/repository"
	"github.com/devashishs/billmate-api/internal/presentation/http/handler"
	"github.com/devashishs/billmate-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	businessService := service.NewBusinessService(businessRepo)
	customerService := service.NewCustomerService(customerRepo, businessRepo)
	productService := service.NewProductService(productRepo, businessRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, businessRepo, customerRepo, productRepo)
	renderService := service.NewRenderService(invoiceRepo, businessRepo, cfg.Invoice.CurrencySymbol)
	dashboardService := service.NewDashboardService(invoiceRepo, customerRepo, productRepo, businessRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Business:  handler.NewBusinessHandler(businessService),
		Customer:  handler.NewCustomerHandler(customerService),
		Product:   handler.NewProductHandler(productService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, renderService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
