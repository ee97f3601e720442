package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/promo-kiosk/internal/config"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

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

	// The catalog is read once at startup
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the catalog tables
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	if err := db.AutoMigrate(
		&entity.PromotionRecord{},
		&entity.ProductRecord{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// SeedCatalog fills empty catalog tables with the given rows, keeping their order
func SeedCatalog(ctx context.Context, seeder repository.CatalogSeeder, products []*entity.Product, promotions []*entity.Promotion) error {
	promoRecords := make([]entity.PromotionRecord, 0, len(promotions))
	for _, p := range promotions {
		promoRecords = append(promoRecords, entity.NewPromotionRecord(p))
	}
	if err := seeder.SeedPromotions(ctx, promoRecords); err != nil {
		return fmt.Errorf("failed to seed promotions: %w", err)
	}

	productRecords := make([]entity.ProductRecord, 0, len(products))
	for i, p := range products {
		productRecords = append(productRecords, entity.NewProductRecord(p, i+1))
	}
	if err := seeder.SeedProducts(ctx, productRecords); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Info().
		Int("products", len(productRecords)).
		Int("promotions", len(promoRecords)).
		Msg("catalog seed completed")
	return nil
}
