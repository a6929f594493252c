package database

import (
	"fmt"
	"log"

	"github.com/devashishs/billmate-api/internal/config"
	"github.com/devashishs/billmate-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Business{},
		&entity.Customer{},
		&entity.Product{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData installs a default business with canonical invoice settings
// plus a few sample customers and products, so a fresh install can issue an
// invoice immediately.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Business{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count businesses: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default data...")

	business := entity.Business{
		Name:                     "My Business",
		Address:                  "123, Business Street, City - 400001",
		GSTIN:                    "27XXXXX1234X1ZX",
		State:                    "Maharashtra",
		IsDefault:                true,
		InvoiceNumberPrefix:      "INV",
		InvoiceNumberNext:        1,
		InvoiceNumberIncludeYear: true,
		InvoiceSettings:          entity.DefaultInvoiceSettings(),
	}
	if err := db.Create(&business).Error; err != nil {
		return fmt.Errorf("failed to seed default business: %w", err)
	}

	customers := []entity.Customer{
		{BusinessID: business.ID, Name: "ABC Traders", Address: "456, Market Rd", GSTIN: "27YYYYY5678Y1ZY", State: "Maharashtra", Phone: "9876543210"},
		{BusinessID: business.ID, Name: "XYZ Retail", Address: "789, MG Road", GSTIN: "29ZZZZZ9012Z1ZZ", State: "Karnataka", Phone: "9123456789"},
	}
	if err := db.Create(&customers).Error; err != nil {
		log.Printf("Warning: failed to seed sample customers: %v", err)
	}

	products := []entity.Product{
		{BusinessID: business.ID, Name: "Product A", HSN: "8471", Rate: 1000, GSTPercent: 18, Unit: "Pcs"},
		{BusinessID: business.ID, Name: "Product B", HSN: "8473", Rate: 2500, GSTPercent: 18, Unit: "Pcs"},
		{BusinessID: business.ID, Name: "Service Fee", HSN: "9983", Rate: 500, GSTPercent: 18, Unit: "Nos"},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Printf("Warning: failed to seed sample products: %v", err)
	}

	log.Println("Default data seeded successfully")
	return nil
}
